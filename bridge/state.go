// ABOUTME: Process-wide library client shared by every native call
// ABOUTME: Built lazily from RSSIT_* configuration on first use and released by Shutdown

package bridge

import (
	"fmt"
	"sync"
	"time"

	"rss-it-library/pkg/config"
	"rss-it-library/rssit"
)

type state struct {
	mu           sync.Mutex
	client       *rssit.Client
	parseTimeout time.Duration
}

var shared = &state{}

// loadConfig is replaced in tests
var loadConfig = config.LoadFromEnv

// get returns the shared client, creating it on first use
func (s *state) get() (*rssit.Client, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, s.parseTimeout, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, 0, fmt.Errorf("load configuration: %w", err)
	}

	client, err := rssit.NewClientFromConfig(cfg)
	if err != nil {
		return nil, 0, fmt.Errorf("initialise library: %w", err)
	}

	s.client = client
	s.parseTimeout = cfg.Parser.ParseTimeout
	return s.client, s.parseTimeout, nil
}

// set installs client as the shared client, closing any previous one
func (s *state) set(client *rssit.Client, parseTimeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		_ = s.client.Close()
	}
	s.client = client
	s.parseTimeout = parseTimeout
}

// Shutdown closes the shared client. The next call builds a fresh one.
func Shutdown() error {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.client == nil {
		return nil
	}

	err := shared.client.Close()
	shared.client = nil
	return err
}
