package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/rpg-content-admin/internal/config"
	"github.com/KirkDiggler/rpg-content-admin/internal/logging"
)

func TestNewLogger(t *testing.T) {
	t.Run("honors level", func(t *testing.T) {
		logger, err := logging.NewLogger(config.LoggingConfig{Level: "warn", Encoding: "json"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("falls back to info on unknown level", func(t *testing.T) {
		logger, err := logging.NewLogger(config.LoggingConfig{Level: "chatty"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("rejects unknown encoding", func(t *testing.T) {
		_, err := logging.NewLogger(config.LoggingConfig{Encoding: "xml"})
		assert.Error(t, err)
	})
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))

	logger := zap.NewExample()
	assert.Same(t, logger, logging.OrNop(logger))
}
