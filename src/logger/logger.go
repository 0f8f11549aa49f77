// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// The CLI writes its audit trail (request line, response status) and
// diagnostics through a Logger, never to the data output channel.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled, writing to stderr.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// StructuredLogger implements Logger with [zap], emitting one JSON object per
// line with "level", "ts" and "message" keys. It suits log collectors that
// scrape stderr of scripted invocations.
//
// StructuredLogger is safe for concurrent use by multiple goroutines.
//
// [zap]: https://github.com/uber-go/zap
type StructuredLogger struct {
	out    *swappableWriter
	zl     *zap.Logger
	silent bool
}

// swappableWriter lets SetOutput redirect an already-built zap core.
type swappableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swappableWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swappableWriter) Sync() error { return nil }

func (s *swappableWriter) set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// NewStructuredLogger creates a JSON logger writing to writer.
// A nil writer discards output. When silent is true nothing is written at all.
func NewStructuredLogger(writer io.Writer, silent bool) *StructuredLogger {
	out := &swappableWriter{}
	out.set(writer)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.MessageKey = "message"
	encoderCfg.LevelKey = "level"
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(out),
		zapcore.InfoLevel,
	)

	return &StructuredLogger{
		out:    out,
		zl:     zap.New(core),
		silent: silent,
	}
}

// Printf formats and logs a structured message at info level.
func (s *StructuredLogger) Printf(format string, v ...any) {
	if s.silent {
		return
	}
	s.zl.Info(fmt.Sprintf(format, v...))
}

// Println logs its operands, space separated, at info level.
func (s *StructuredLogger) Println(v ...any) {
	if s.silent {
		return
	}
	s.zl.Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// SetOutput sets the output destination. A nil writer discards output.
func (s *StructuredLogger) SetOutput(w io.Writer) { s.out.set(w) }

// Sync flushes any buffered log entries.
func (s *StructuredLogger) Sync() error { return s.zl.Sync() }
