// Package logging builds the process logger.
package logging

import "go.uber.org/zap"

// New returns a development-style logger writing to stderr when debug is
// enabled, and a no-op logger otherwise.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
