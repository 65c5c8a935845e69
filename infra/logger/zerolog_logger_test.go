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

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"k": 2})
	l.Warnf("warn")
	l.Errorf("error")
}

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("warn", "json", &buf))
	defer func() { require.NoError(t, Configure("info", "", os.Stderr)) }()

	l := New("runner")
	l.Infof("hidden")
	l.Warnf("shown %d", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "runner", entry["component"])
	assert.Equal(t, "shown 1", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestConfigureRejectsUnknown(t *testing.T) {
	assert.Error(t, Configure("loud", "", nil))
	assert.Error(t, Configure("info", "xml", nil))
}
