package logger

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a file path; empty means stdout.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger writes JSON to cfg.Sink. A sink that cannot be opened is reported
// on stderr and the logger falls back to stdout.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	ws, err := sink(cfg.Sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger %s: %v; writing to stdout\n", name, err)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core, zap.AddCaller()).Named(name)
}

func sink(path string) (zapcore.WriteSyncer, error) {
	stdout := zapcore.Lock(os.Stdout)
	if path == "" {
		return stdout, nil
	}
	ws, _, err := zap.Open(path)
	if err != nil {
		return stdout, errors.Wrapf(err, "open log sink %q", path)
	}
	return ws, nil
}
