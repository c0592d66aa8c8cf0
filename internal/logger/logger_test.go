package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONRedactsSecrets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, FormatJSON, "info")
	log.Info("login", "email", "admin@example.com", "password", "123456", "token", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "admin@example.com", record["email"])
	require.Equal(t, "[REDACTED]", record["password"])
	require.Equal(t, "[REDACTED]", record["token"])
}

func TestPrettyHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, FormatPretty, "warn")

	log.Info("hidden")
	require.Zero(t, buf.Len())

	log.With("component", "auth").WithGroup("req").Warn("access denied", "path", "/api/v1/accounts", "authorization", "Bearer x")
	line := buf.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	require.Contains(t, line, "access denied")
	require.Contains(t, line, "component")
	require.Contains(t, line, "req.path")
	require.Contains(t, line, "[REDACTED]")
	require.NotContains(t, line, "Bearer x")
}
