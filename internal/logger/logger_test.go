package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l, err := NewLogger("test", config.Log{Level: "INFO"}, config.App{})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NoError(t, l.Close())
}

// TestNewLogger_UnknownLevel verifies that an unknown level is rejected.
func TestNewLogger_UnknownLevel(t *testing.T) {
	_, err := NewLogger("test", config.Log{Level: "LOUD"}, config.App{})
	assert.Error(t, err)
}

// TestNewLogger_DebugOverridesLevel verifies that the debug switch wins over
// the configured level.
func TestNewLogger_DebugOverridesLevel(t *testing.T) {
	l, err := NewLogger("test", config.Log{Level: "ERROR"}, config.App{Debug: true})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

// TestNewLogger_WritesJSONFile verifies that entries reach the file sink as JSON.
func TestNewLogger_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := NewLogger("file-role", config.Log{Level: "INFO", File: path}, config.App{Production: true})
	require.NoError(t, err)

	l.Info().Msg("to file")
	l.Debug().Msg("below level")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)
	entry := decodeEntry(t, lines[0])
	assert.Equal(t, "file-role", entry["role"])
	assert.Equal(t, "to file", entry["message"])
}

// TestNewLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("test-role", zerolog.InfoLevel, nil, &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("caller-role", zerolog.InfoLevel, nil, &buf)
	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, buf.Bytes())
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

// TestNewLogger_FiltersBelowLevel verifies the per-logger level.
func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("level-role", zerolog.WarnLevel, nil, &buf)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNewLogger_MultipleWriters verifies that every writer receives the entry.
func TestNewLogger_MultipleWriters(t *testing.T) {
	var a, b bytes.Buffer
	l := newLogger("multi", zerolog.InfoLevel, nil, &a, &b)

	l.Info().Msg("twice")

	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"TRACE", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"Warning", zerolog.WarnLevel},
		{"WARN", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"CRITICAL", zerolog.FatalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
	assert.NoError(t, l.Close())
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("inherited-role", zerolog.InfoLevel, nil, &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

// TestFromRequest_ReturnsAttachedLogger verifies that FromRequest returns the
// logger attached to the request's context.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req-value", entry["req-key"])
}
