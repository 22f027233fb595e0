package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. Production mode emits JSON,
// anything else gets the human-readable development encoder.
func Init(env string) error {
	var (
		built *zap.Logger
		err   error
	)

	if env == "production" {
		built, err = zap.NewProduction()
	} else {
		built, err = zap.NewDevelopment()
	}

	if err != nil {
		return err
	}

	log = built
	return nil
}

// Sync flushes buffered entries; call it on shutdown.
func Sync() {
	_ = log.Sync()
}

func Info(msg string, fields ...zapcore.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	log.Fatal(msg, fields...)
}
