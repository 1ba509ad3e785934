package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ressKim-io/toxicity-api/internal/infrastructure/config"
)

// ServiceName is attached to every log entry
const ServiceName = "toxicity-api"

// Sampling keeps the first samplingInitial entries with the same level and
// message per tick, then every samplingThereafter-th one.
const (
	samplingTick       = time.Second
	samplingInitial    = 100
	samplingThereafter = 100
)

// NewLogger builds the service logger on the configured output stream
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	out, err := outputFor(cfg.Output)
	if err != nil {
		return nil, err
	}
	return newLogger(cfg, out)
}

func outputFor(name string) (io.Writer, error) {
	switch name {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("unsupported log output %q", name)
	}
}

func newLogger(cfg *config.LogConfig, out io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(zapcore.AddSync(out)), level)
	if cfg.Sampling {
		core = zapcore.NewSamplerWithOptions(core, samplingTick, samplingInitial, samplingThereafter)
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", ServiceName)),
	), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
