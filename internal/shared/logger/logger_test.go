package logger_test

import (
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		l, err := logger.New(false, "")
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug level", func(t *testing.T) {
		l, err := logger.New(true, "debug")
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(false, "loud")
		assert.Error(t, err)
	})
}
