// Package logger provides a small logging interface for bwmon components.
// Output goes through the standard log package, so redirecting it (for
// example to a file while the terminal UI owns the screen) redirects
// every component at once.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger is what every bwmon component logs through. Methods take
// fmt.Printf style arguments.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes through the standard log package. Debug output is
// suppressed unless BWMON_DEBUG is set.
type envLogger struct {
	prefix string
}

// DebugEnv is the environment variable that enables debug output.
const DebugEnv = "BWMON_DEBUG"

// NewEnvLogger returns a Logger tagging each line with prefix, such as
// "[netstat]" or "[exporter]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured call on a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger records messages in memory so tests can assert on what a
// component logged. It is safe for use from the sampling and exporter
// goroutines.
type BufferLogger struct {
	mu   sync.Mutex
	msgs []LogMessage
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

// Messages returns a copy of everything logged so far, oldest first.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogMessage(nil), l.msgs...)
}

// Count returns how many messages were logged at level.
func (l *BufferLogger) Count(level string) int {
	n := 0
	for _, m := range l.Messages() {
		if m.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether a message at level contains substr.
func (l *BufferLogger) Contains(level, substr string) bool {
	for _, m := range l.Messages() {
		if m.Level == level && strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

var defaultLogger = NewEnvLogger("")

// Default returns the package-wide logger, an unprefixed envLogger unless
// SetDefault replaced it.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-wide logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
