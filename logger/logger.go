// Package logger builds the zap logger used by the CLI and adapts it to btree.Logger.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"btree/btree"
)

// Config holds the logger settings taken from the command line.
type Config struct {
	// Level is the minimum level: "debug", "info", "warn" or "error".
	Level string
	// Format is "json" or "console".
	Format string
	// OutputFile is a path, or "stdout" / "stderr".
	OutputFile string
}

// New creates a zap.Logger from cfg. An unknown level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	sink, err := writeSyncer(cfg.OutputFile)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder(cfg.Format), sink, level)
	return zap.New(core).With(zap.String("component", "btree")), nil
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.ToLower(format) == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func writeSyncer(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(output) {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	default:
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		return zapcore.AddSync(file), nil
	}
}

// Zap wraps a zap.Logger to implement btree.Logger.
type Zap struct {
	sugar *zap.SugaredLogger
}

// NewZap creates a btree.Logger from a zap.Logger.
func NewZap(l *zap.Logger) btree.Logger {
	return &Zap{sugar: l.Sugar()}
}

func (z *Zap) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }

func (z *Zap) Warn(msg string, args ...any) { z.sugar.Warnw(msg, args...) }

func (z *Zap) Info(msg string, args ...any) { z.sugar.Infow(msg, args...) }

func (z *Zap) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }
