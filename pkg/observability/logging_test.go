package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestInitLogger_JSONCarriesServiceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "info", Format: "json", ServiceName: "pricing-service", Output: &buf})

	logger.Debug("dropped")
	logger.Info("quote priced", "term_months", 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "expected one JSON line, got %q", buf.String())
	assert.Equal(t, "pricing-service", entry["service"])
	assert.Equal(t, "quote priced", entry["msg"])
	assert.EqualValues(t, 12, entry["term_months"])
}

func TestInitLogger_TextIsDefaultFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "warn", Output: &buf})

	logger.Info("dropped")
	logger.Warn("shortfall", "lender_id", "3")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.True(t, strings.HasPrefix(out, "time="), "text handler output, got %q", out)
	assert.Contains(t, out, "lender_id=3")
	assert.NotContains(t, out, "service=")
}

func TestInitLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "info", Format: "json", Output: &buf})
	assert.Equal(t, logger.Handler(), slog.Default().Handler())
}
