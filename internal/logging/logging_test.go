package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{" warn ", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", DefaultLevel},
		{"chatty", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.WithField("op", "initSession").Info("session opened")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "session opened")
	assert.Contains(t, out, "op=initSession")
	assert.NotContains(t, out, "hidden")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
