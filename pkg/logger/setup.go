package logger

import (
	"io"
)

// SetupLogger builds the process-wide logger from CLI settings and returns it.
// A nil output keeps the default (stdout).
func SetupLogger(logLevel string, logJSON, logSource bool, output io.Writer) Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(logLevel)
	cfg.JSON = logJSON
	cfg.AddSource = logSource
	if output != nil {
		cfg.Output = output
	}
	l := NewLogger(cfg)
	defaultLogger = l
	return l
}
