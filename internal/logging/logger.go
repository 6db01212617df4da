// Package logging builds the zap loggers used by the Basalt host.
//
// Development builds log human-readable output at Debug level;
// production builds emit JSON at Info level. Both write to stderr so
// log output never mixes with the dev startup marker on stdout.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/npiesco/basalt/internal/appmeta"
)

// New returns the logger for this build configuration.
func New(dev bool) *zap.Logger {
	return NewWithWriter(dev, os.Stderr)
}

// NewWithWriter builds a logger over an explicit writer.
func NewWithWriter(dev bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	encoder := zapcore.NewJSONEncoder(productionEncoderConfig())
	if dev {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(developmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).With(
		zap.String("app", appmeta.Name),
		zap.String("version", appmeta.Version),
	)
}

func productionEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
}

func developmentEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
