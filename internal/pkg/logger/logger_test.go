package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(DEBUG)
	SetRedactSecrets(true)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(INFO)
	})
	return &buf
}

func TestLogFields(t *testing.T) {
	buf := captureLogs(t)

	Info("gist loaded", "gist_id", "abc123", "campaigns", 4)

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "gist loaded", entry["msg"])
	assert.Equal(t, "abc123", entry["gist_id"])
	assert.Equal(t, "4", entry["campaigns"])
}

func TestLogRedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	Warn("auth configured", "github_token", "ghp_abcdef1234567890")
	assert.Contains(t, buf.String(), "ghp_***")
	assert.NotContains(t, buf.String(), "abcdef1234567890")
}

func TestLogLevelFilter(t *testing.T) {
	buf := captureLogs(t)
	SetLevel(WARN)

	Info("dropped")
	Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARNING"))
	assert.Equal(t, ERROR, ParseLevel(" error "))
	assert.Equal(t, INFO, ParseLevel("verbose"))
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "", RedactSecret(""))
	assert.Equal(t, "***", RedactSecret("short"))
	assert.Equal(t, "ghp_***", RedactSecret("ghp_0123456789"))
}
