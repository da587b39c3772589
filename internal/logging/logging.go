// Package logging configures the logrus logger shared by the inventory.
//
// Logs always go to stderr (or the writer passed to New): stdout belongs
// to the inventory document Ansible reads.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps an inventory script quiet unless something is wrong
const DefaultLevel = logrus.WarnLevel

// ParseLevel converts a level name, falling back to DefaultLevel
func ParseLevel(v string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(v))
	if err != nil {
		return DefaultLevel
	}
	return level
}

// New creates a configured logger writing to w, or stderr when w is nil
func New(level string, w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(ParseLevel(level))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	return logger
}

// Discard returns a logger that drops everything, for tests and library use
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
