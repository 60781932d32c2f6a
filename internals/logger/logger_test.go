package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]charmlog.Level{
		"debug":   charmlog.DebugLevel,
		" INFO ":  charmlog.InfoLevel,
		"warning": charmlog.WarnLevel,
		"error":   charmlog.ErrorLevel,
		"":        charmlog.InfoLevel,
		"bogus":   charmlog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew(t *testing.T) {
	t.Run("Should write JSON lines when requested", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "debug", JSON: true, Output: &buf})
		l.Info("list query", "entity", "students", "total", 3)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "list query", line["msg"])
		assert.Equal(t, "students", line["entity"])
	})

	t.Run("Should drop records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "warn", Output: &buf})
		l.Info("hidden")
		assert.Empty(t, buf.String())
		l.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}
