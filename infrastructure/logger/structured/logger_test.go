package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rss-it-library/pkg/config"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, "info", logger.log.GetLevel().String())
}

func TestNewLogger_InvalidOptions(t *testing.T) {
	_, err := NewLogger(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", map[string]interface{}{"code": 500})

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "code=500")
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("feed parsed", map[string]interface{}{
		"url":   "https://example.com/rss",
		"items": 3,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "feed parsed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "https://example.com/rss", entry["url"])
	assert.Equal(t, float64(3), entry["items"])
}

func TestNewFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rssit.log")
	logger, err := NewFromConfig(config.LogConfig{Level: "info", Format: "text", File: path})
	require.NoError(t, err)

	logger.Info("written to file", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	logger, err := NewLogger(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}
