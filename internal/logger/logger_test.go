package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

// ── fields ──

func TestClientLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("tinyfs-test", "", "debug")
	l.Logger = l.Output(&buf)

	l.Debug().Str("path", "a.tfs").Msg("hello")

	entry := decode(t, buf.Bytes())
	assert.Equal(t, "tinyfs-test", entry["role"])
	assert.Equal(t, "a.tfs", entry["path"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// ── NewClientLogger ──

func TestNewClientLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "", want: DefaultClientLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "loud", want: DefaultClientLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewClientLogger("cli", "", tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tinyfs.log")

	l := NewClientLogger("cli", path, "info")
	l.Info().Msg("first")
	l.Debug().Msg("filtered")
	l.Warn().Msg("second")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "first", decode(t, []byte(lines[0]))["message"])
	assert.Equal(t, "cli", decode(t, []byte(lines[1]))["role"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	l := NewClientLogger("cli", filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "info")
	require.NotNil(t, l)
}

// ── helpers ──

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("container", "a.tfs").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "a.tfs", decode(t, buf.Bytes())["container"])
}
