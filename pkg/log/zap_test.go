package log

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetOutputWritesJSONEntries(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "weather-test")
	var buf bytes.Buffer
	SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() { SetOutput(zapcore.AddSync(os.Stdout)) })

	Info("cache warmed", zap.String("city", "Paris"))
	Warnf("slow upstream: %dms", 1200)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "cache warmed", first["msg"])
	assert.Equal(t, "Paris", first["city"])
	assert.Equal(t, "weather-test", first["logName"])
	assert.Contains(t, first, "@timestamp")
	assert.Contains(t, first["logger_name"], "zap_test.go")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", second["level"])
	assert.Equal(t, "slow upstream: 1200ms", second["msg"])
}

func TestDebugIsFilteredAtDefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() { SetOutput(zapcore.AddSync(os.Stdout)) })

	Debug("hidden")
	Debugw("hidden too", "k", "v")

	assert.Empty(t, buf.String())
}
