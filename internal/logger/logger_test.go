package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("info")
	Debug("hidden")
	Info("shown", Fields{"pkg": "system/htop"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "pkg=system/htop")
}

func TestLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("debug")
	Debugf("building %s", "htop")

	assert.Contains(t, buf.String(), "building htop")
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetTestOutput(&buf)
	defer UnsetTestOutput()

	InitLogger("chatty")
	Debug("hidden")
	Warnf("careful: %d", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "careful: 1")
}
