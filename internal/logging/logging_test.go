package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapLogger(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	var buf bytes.Buffer
	require.NoError(t, BootstrapLogger("warn", "json", &buf))
	assert.Equal(t, logrus.WarnLevel, Log.Level)

	Log.Info("dropped")
	Log.WithField("department", "Sales").Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "Sales", entry["department"])
}

func TestBootstrapLogger_Invalid(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	assert.Error(t, BootstrapLogger("loud", "text", nil))
	assert.Error(t, BootstrapLogger("info", "xml", nil))
	assert.Same(t, prev, Log)
}
