// Package logging builds the zap logger used across the program.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where diagnostics go. Console output targets stderr so
// it never interleaves with ghost-typed text or the TUI on stdout. File
// output is JSON and rotated.
type Options struct {
	Level   string
	File    string
	Console bool
}

// New builds a logger from the options. The returned cleanup flushes
// buffered entries and should run before exit. A configuration with no
// sinks yields a no-op logger.
func New(opts Options) (*zap.Logger, func(), error) {
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, fmt.Errorf("failed to parse log level %q: %w", opts.Level, err)
		}
	}

	var cores []zapcore.Core
	if opts.Console {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level))
	}
	if opts.File != "" {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, fileWriter, level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
	cleanup := func() {
		if err := logger.Sync(); err != nil {
			// Syncing stderr fails on some platforms; stay quiet about it.
			msg := err.Error()
			if !strings.Contains(msg, "invalid argument") &&
				!strings.Contains(msg, "operation not supported") {
				fmt.Fprintln(os.Stderr, "failed to sync logger:", err)
			}
		}
	}
	return logger, cleanup, nil
}
