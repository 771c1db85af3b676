// Package logger provides leveled logging for the glabenv CLI tool.
//
// Debug information goes to stderr, separate from the user-facing output
// on stdout, so verbose runs never corrupt JSON output or diff reports.
// An optional log file captures every level regardless of verbosity,
// mirroring the audit trail the tool keeps for variable mutations.
//
// # Log Levels
//
// Four log levels are supported, in order of severity:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Warning conditions that don't prevent operation
//   - Error: Error conditions that affect operation
//
// # Initialization
//
// Initialize the logger based on the --verbose flag:
//
//	logger.Init(verbose)
//
// By default (verbose=false), only Warn and Error messages are shown on
// stderr. To additionally record all levels to a file:
//
//	closeFn, err := logger.InitFile(verbose, "glabenv.log")
//	defer closeFn()
//
// # Usage
//
//	logger.Debug("Loading config from %s", path)
//	logger.Info("Fetched %d variables from project %s", n, project)
//	logger.Warn("Skipping masked variable with empty value: %s", key)
//	logger.Error("Failed to update variable %s: %v", key, err)
//
// Structured logging with fields:
//
//	logger.InfoFields("Reconcile complete", map[string]interface{}{
//	    "creates": 2,
//	    "deletes": 1,
//	})
//
// # Output Format
//
// Log messages are formatted as:
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message
//	[INFO] 2026-08-30 10:30:45 Fetched 12 variables from project 42
//
// Structured logs append sorted key=value pairs.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger handles leveled logging with thread-safe output.
type Logger struct {
	level  Level
	output io.Writer
	file   io.Writer // receives all levels when set
	mu     sync.Mutex
}

// Global logger instance.
var std = &Logger{
	level:  LevelWarn, // Default: only warnings and errors
	output: os.Stderr,
}

// Init initializes the global logger with the specified verbosity.
// When verbose is true, Debug and Info levels are enabled.
func Init(verbose bool) {
	std.mu.Lock()
	defer std.mu.Unlock()

	if verbose {
		std.level = LevelDebug
	} else {
		std.level = LevelWarn
	}
}

// InitFile initializes the logger and additionally appends every message,
// regardless of level, to the file at path. The returned function closes
// the file; it is safe to call even if the file was never written to.
func InitFile(verbose bool, path string) (func(), error) {
	Init(verbose)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	std.mu.Lock()
	std.file = f
	std.mu.Unlock()

	return func() {
		std.mu.Lock()
		std.file = nil
		std.mu.Unlock()
		_ = f.Close()
	}, nil
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput sets the stderr-side output destination for the global logger.
// Useful for testing. Default is os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.output = w
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// log writes a formatted message at the specified level.
func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s %s\n", level.String(), timestamp, msg)

	if l.file != nil {
		_, _ = io.WriteString(l.file, line)
	}
	if level < l.level {
		return
	}
	_, _ = io.WriteString(l.output, line)
}

// logFields writes a message with structured key-value fields.
func (l *Logger) logFields(level Level, msg string, fields map[string]interface{}) {
	// Sort field keys for consistent output
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fieldParts []string
	for _, k := range keys {
		fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	fieldsStr := ""
	if len(fieldParts) > 0 {
		fieldsStr = " " + strings.Join(fieldParts, " ")
	}

	l.log(level, "%s%s", msg, fieldsStr)
}

// Debug logs a debug message.
// Only shown when verbose mode is enabled.
func Debug(format string, args ...interface{}) {
	std.log(LevelDebug, format, args...)
}

// Info logs an informational message.
// Only shown when verbose mode is enabled.
func Info(format string, args ...interface{}) {
	std.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
// Always shown regardless of verbose mode.
func Warn(format string, args ...interface{}) {
	std.log(LevelWarn, format, args...)
}

// Error logs an error message.
// Always shown regardless of verbose mode.
func Error(format string, args ...interface{}) {
	std.log(LevelError, format, args...)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelDebug, msg, fields)
}

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelInfo, msg, fields)
}

// WarnFields logs a warning message with structured fields.
func WarnFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelWarn, msg, fields)
}

// ErrorFields logs an error message with structured fields.
func ErrorFields(msg string, fields map[string]interface{}) {
	std.logFields(LevelError, msg, fields)
}

// LogError logs an error with additional context message.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.log(LevelError, "%s: %v", msg, err)
}
