package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalgraph.log")

	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debug("validated", zap.String("status", "acceptable"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"validated"`)
	assert.Contains(t, string(data), `"status":"acceptable"`)
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(Config{Level: "chatty", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitializeReplacesGlobals(t *testing.T) {
	previous := Logger
	t.Cleanup(func() {
		Logger = previous
		Sugar = previous.Sugar()
	})

	require.NoError(t, Initialize(Config{Level: "warn", Format: "json", Output: "stderr"}))
	assert.NotSame(t, previous, Logger)
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewUnwritableOutput(t *testing.T) {
	_, err := New(Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}

func TestGlobalHelpers(t *testing.T) {
	previous := Logger
	t.Cleanup(func() {
		Logger = previous
		Sugar = previous.Sugar()
	})

	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core)

	Debug("configuration loaded")
	Info("config file written")
	Warn("keeping defaults")
	Error("command failed")
	With(zap.String("run_id", "r1")).Info("scoped")

	entries := logs.All()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "r1", entries[4].ContextMap()["run_id"])
}
