package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
)

var (
	global = zap.NewNop()
	mu     sync.RWMutex
)

// SetupLogger builds a zap logger for the given environment and installs it
// as the package-level logger used by Info/Error helpers and the gin middleware.
func SetupLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case "local", "dev":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build zap logger: %s", err)
	}

	mu.Lock()
	global = l
	mu.Unlock()

	return l
}

func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}
