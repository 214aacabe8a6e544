package logger

import (
	"os"
)

// Init initializes the global logger with default settings
func Init() {
	// LOG_LEVEL overrides the INFO default
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		SetLogLevelFromString(logLevel)
	} else {
		SetLogLevel(INFO)
	}
}

// InitWithLevel initializes the global logger with a specific level
func InitWithLevel(level LogLevel) {
	SetLogLevel(level)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return enabled(DEBUG)
}

// IsWarnEnabled returns true if warn logging is enabled
func IsWarnEnabled() bool {
	return enabled(WARN)
}
