package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rss-it-library/core/interfaces"
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	key := "feed:https://example.com/rss"
	value := []byte("payload")
	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "non-existent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	got, err := cache.Get(ctx, "short")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for expired key")
	}
}

func TestMemoryCache_Set_WithZeroTTL(t *testing.T) {
	cache := NewMemoryCacheWithCleanup(10 * time.Millisecond)
	ctx := context.Background()

	if err := cache.Set(ctx, "forever", []byte("value"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	got, err := cache.Get(ctx, "forever")
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get returned %s, want value", string(got))
	}
}

func TestMemoryCache_Set_UpdatesExisting(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value1"), time.Hour)
	cache.Set(ctx, "key", []byte("value2"), time.Hour)

	got, _ := cache.Get(ctx, "key")
	if string(got) != "value2" {
		t.Errorf("Get returned %s, want value2", string(got))
	}
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	original := []byte("abc")
	cache.Set(ctx, "key", original, time.Hour)
	original[0] = 'x'

	got, _ := cache.Get(ctx, "key")
	got[1] = 'y'

	again, _ := cache.Get(ctx, "key")
	if string(again) != "abc" {
		t.Errorf("cached value was mutated: %s", string(again))
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Hour)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail after Delete")
	}

	if err := cache.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Set error = %v, want context.Canceled", err)
	}
	if err := cache.Delete(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Delete error = %v, want context.Canceled", err)
	}
}

func TestMemoryCache_LenAndFlush(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"), time.Hour)
	cache.Set(ctx, "b", []byte("2"), time.Hour)
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}

	cache.Flush()
	if cache.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", cache.Len())
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%26))
			cache.Set(ctx, key, []byte{byte(n)}, time.Hour)
			cache.Get(ctx, key)
			cache.Delete(ctx, key)
		}(i)
	}
	wg.Wait()
}
