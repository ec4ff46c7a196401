package logger_test

import (
	"bytes"
	"testing"

	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitWritesJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.Init(logger.OptionSetWriter(buf))

	logger.Infow("store loaded", "key", "ns:meetings", "count", 3)

	out := buf.String()
	assert.Contains(t, out, `"message":"store loaded"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"key":"ns:meetings"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.Init(logger.OptionSetWriter(buf), logger.OptionLevel(zapcore.WarnLevel))

	logger.Debugw("hidden")
	logger.Infow("hidden too")
	logger.Warnw("shown")
	logger.Errorw("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"message":"also shown"`)
}

func TestOptionAddWriter(t *testing.T) {
	first := new(bytes.Buffer)
	second := new(bytes.Buffer)
	logger.Init(logger.OptionSetWriter(first), logger.OptionAddWriter(second))

	logger.Infow("tee")

	assert.Contains(t, first.String(), "tee")
	assert.Contains(t, second.String(), "tee")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("nonsense"))
}
