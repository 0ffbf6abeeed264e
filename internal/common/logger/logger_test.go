package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapAdapter(zap.New(core)), logs
}

func TestWithFieldsAttachesContext(t *testing.T) {
	log, logs := observedLogger()

	log.WithFields(map[string]interface{}{"component": "test"}).Info("hello", nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "test", entry.ContextMap()["component"])
}

func TestWithErrorAttachesError(t *testing.T) {
	log, logs := observedLogger()

	log.WithError(errors.New("boom")).Warn("failed", map[string]interface{}{"query": "q"})

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "q", ctx["query"])
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := NewZapAdapter(zap.New(core))

	log.Debug("dropped", nil)
	log.Info("dropped", nil)
	log.Error("kept", nil)

	assert.Equal(t, 1, logs.Len())
}
