package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	OutputFile string `yaml:"output_file"` // 为空则只输出到控制台
	MaxSize    int    `yaml:"max_size"`    // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
	Compress   bool   `yaml:"compress"`
}

var (
	mu           sync.RWMutex
	currentLevel = INFO
	base         = newBase()
	entry        = base.WithField("exchange", "btce")
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.DebugLevel) // gating happens on currentLevel
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})
	return l
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// SetLogLevelFromString sets the global log level from a string
func SetLogLevelFromString(levelStr string) {
	SetLogLevel(parseLevel(levelStr))
}

func parseLevel(levelStr string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetOutput redirects every log line, mostly for tests.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// InitWithConfig configures level and optional rotating file output.
func InitWithConfig(cfg Config) error {
	SetLogLevelFromString(cfg.Level)

	writers := []io.Writer{os.Stdout}
	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.OutputFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	base.SetOutput(io.MultiWriter(writers...))
	return nil
}

func enabled(level LogLevel) bool {
	return GetLogLevel() <= level
}

// Debug logs a debug message if debug level is enabled
func Debug(format string, v ...interface{}) {
	if enabled(DEBUG) {
		entry.Debugf(format, v...)
	}
}

// Info logs an info message if info level is enabled
func Info(format string, v ...interface{}) {
	if enabled(INFO) {
		entry.Infof(format, v...)
	}
}

// Warn logs a warning message if warn level is enabled
func Warn(format string, v ...interface{}) {
	if enabled(WARN) {
		entry.Warnf(format, v...)
	}
}

// Error logs an error message if error level is enabled
func Error(format string, v ...interface{}) {
	if enabled(ERROR) {
		entry.Errorf(format, v...)
	}
}

// WithField returns a structured entry for call sites that want fields.
func WithField(key string, value interface{}) *logrus.Entry {
	return entry.WithField(key, value)
}

// Debugf is an alias for Debug for consistency
func Debugf(format string, v ...interface{}) {
	Debug(format, v...)
}

// Infof is an alias for Info for consistency
func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

// Warnf is an alias for Warn for consistency
func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}

// Errorf is an alias for Error for consistency
func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}
