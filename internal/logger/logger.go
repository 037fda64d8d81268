// Package logger holds the process-wide structured logger used by rangectl.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It discards everything until Init is called.
var L = zap.NewNop()

// Format names accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures the logger initialization.
type Options struct {
	Level  string    // debug, info, warn or error. Default: warn
	Format string    // console or json. Default: console
	Output io.Writer // Default: os.Stderr
}

// Init replaces L according to opts.
func Init(opts Options) error {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(opts.Level))); err != nil {
			return fmt.Errorf("logger: level %q: %w", opts.Level, err)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return fmt.Errorf("logger: unknown format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	L = zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level))
	return nil
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = L.Sync()
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields ...zap.Field) { L.Debug(msg, fields...) }

// Info logs an info message with optional fields.
func Info(msg string, fields ...zap.Field) { L.Info(msg, fields...) }

// Warn logs a warning message with optional fields.
func Warn(msg string, fields ...zap.Field) { L.Warn(msg, fields...) }

// Error logs an error message with optional fields.
func Error(msg string, fields ...zap.Field) { L.Error(msg, fields...) }
