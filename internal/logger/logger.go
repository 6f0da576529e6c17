package logger

import (
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"codeberg.org/mutker/cpumon/internal/errors"
	"github.com/rs/zerolog"
)

var std = newLogger(os.Stderr, WarnLevel, false)

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a configured level name onto a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return WarnLevel, errors.New().WithData(errors.ErrInvalidLogLevel, name)
	}
}

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

type zlog struct {
	z zerolog.Logger
}

// New builds a console logger writing to out.
func New(out io.Writer, level LogLevel, isService bool) Logger {
	return newLogger(out, level, isService)
}

func newLogger(out io.Writer, level LogLevel, isService bool) *zlog {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    isService,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	return &zlog{
		z: zerolog.New(output).With().Timestamp().Logger().Level(zerolog.Level(level)),
	}
}

func (l *zlog) Debug() *LogEvent { return &LogEvent{l.z.Debug()} }
func (l *zlog) Info() *LogEvent  { return &LogEvent{l.z.Info()} }
func (l *zlog) Warn() *LogEvent  { return &LogEvent{l.z.Warn()} }
func (l *zlog) Error() *LogEvent { return &LogEvent{l.z.Error()} }

func (l *zlog) ErrorWithCode(err errors.Error) *LogEvent {
	return &LogEvent{l.z.Error().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

// Init replaces the process-wide logger
func Init(level LogLevel, out io.Writer, isService bool) {
	std = newLogger(out, level, isService)
}

// Default returns the process-wide logger
func Default() Logger {
	return std
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return syscall.Getpgrp() == syscall.Getpid()
}

// Debug logs a debug message
func Debug() *LogEvent {
	return std.Debug()
}

// Info logs an info message
func Info() *LogEvent {
	return std.Info()
}

// Warn logs a warning message
func Warn() *LogEvent {
	return std.Warn()
}

// Error logs an error message
func Error() *LogEvent {
	return std.Error()
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return std.ErrorWithCode(err)
}
