package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создаёт именованный логгер: консоль всегда, JSON-файл в dir если dir задан.
func New(name, dir string, debug bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	if dir != "" {
		if fileCore, err := newFileCore(name, dir, encoderConfig, level); err != nil {
			fmt.Fprintf(os.Stderr, "logger: file sink disabled: %v\n", err)
		} else {
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(name)
}

func newFileCore(name, dir string, cfg zapcore.EncoderConfig, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, time.Now().Format("20060102")))
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(f), level), nil
}
