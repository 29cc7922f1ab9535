// Package gostalog provides conditional debug logging for gosta.
//
// Debug logging is enabled by setting the GOSTA_DEBUG environment
// variable, or programmatically via SetVerbose from the CLI's --debug
// flag:
//
//	GOSTA_DEBUG=1 gosta --library lib.lib --design top.v --sdc top.sdc
//
// When enabled, messages are written to stderr with timestamps. When
// disabled (the default), Log is a no-op; Warn always writes.
package gostalog

import (
	"log"
	"os"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("GOSTA_DEBUG") != "" {
		SetVerbose(true)
	}
}

// Enabled reports whether debug logging is currently on.
func Enabled() bool {
	return enabled
}

// SetVerbose turns debug logging on or off programmatically.
func SetVerbose(v bool) {
	enabled = v
	if v && logger == nil {
		logger = log.New(os.Stderr, "[gosta] ", log.Ltime|log.Lmicroseconds)
	}
}

// Log writes a printf-style debug message if logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// Warn writes a message unconditionally, even without GOSTA_DEBUG set
// or SetVerbose called.
func Warn(format string, args ...any) {
	if logger == nil {
		logger = log.New(os.Stderr, "[gosta] ", log.Ltime|log.Lmicroseconds)
	}
	logger.Printf("WARN: "+format, args...)
}
