// Package logger is the process-wide diagnostic logger.
//
// Messages go to stderr so they never mix with prompts written to stdout.
// Call sites use printf-style helpers with a bracketed component prefix:
//
//	logger.Debug("[Setup] %s already configured", key)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Level is a logging threshold.
type Level = log.Level

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
	FatalLevel = log.FatalLevel
)

var std = log.NewWithOptions(os.Stderr, log.Options{
	Level:      log.InfoLevel,
	Prefix:     "gptautocli",
	TimeFormat: time.Kitchen,
})

// ParseLevel accepts trace, debug, info, warn, error, fatal and panic.
// trace logs like debug and panic like fatal.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "trace":
		return DebugLevel, nil
	case "warning":
		return WarnLevel, nil
	case "panic":
		return FatalLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return InfoLevel, fmt.Errorf("invalid log level %q: use trace, debug, info, warn, error, fatal or panic", s)
	}
	return level, nil
}

// SetLevel sets the minimum level that is written.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// GetLevel returns the current threshold.
func GetLevel() Level {
	return std.GetLevel()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Trace logs very chatty diagnostics. It shares the debug threshold.
func Trace(format string, args ...any) {
	std.Debugf(format, args...)
}

func Debug(format string, args ...any) {
	std.Debugf(format, args...)
}

func Info(format string, args ...any) {
	std.Infof(format, args...)
}

func Warn(format string, args ...any) {
	std.Warnf(format, args...)
}

func Error(format string, args ...any) {
	std.Errorf(format, args...)
}
