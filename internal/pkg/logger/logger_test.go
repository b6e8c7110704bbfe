package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsolatedLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")
	l := NewIsolatedLogger(path)

	l.Info("api", "first", nil)
	l.Error("api", "request failed", map[string]interface{}{"endpoint": "/health", "error": "HTTP 500"})
	l.Warn("session", "unknown mode", map[string]interface{}{"value": "turbo"})
	_ = l.Sync()

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "unknown mode", all[0].Message, "newest first")
	assert.Equal(t, "first", all[2].Message)

	errs, err := l.GetLogs("ERROR", 10, 0)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "api", errs[0].Module)
	assert.Equal(t, "/health", errs[0].Details["endpoint"])
	assert.NotEmpty(t, errs[0].Id)
}

func TestReadLogFilePagination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	lines := `{"level":"INFO","message":"a"}
not json
{"level":"INFO","message":"b"}
{"level":"INFO","message":"c"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	page, err := ReadLogFile(path, "", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Message)

	past, err := ReadLogFile(path, "", 5, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestReadLogFileMissing(t *testing.T) {
	entries, err := ReadLogFile(filepath.Join(t.TempDir(), "nope.log"), "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestZapLoggerFromObserver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLoggerFrom(zap.New(core))

	l.Warn("api", "unexpected response shape", map[string]interface{}{"field": "uploads"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unexpected response shape", entry.Message)
	assert.Equal(t, "api", entry.ContextMap()["module"])
}
