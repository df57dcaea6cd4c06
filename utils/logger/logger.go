package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// Init builds the process logger. Production emits JSON at info; anything else gets the
// colored console encoder at debug. A non-empty levelName overrides either default.
func Init(environment, levelName string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	}

	level.SetLevel(cfg.Level.Level())
	if levelName != "" {
		if err := SetLevel(levelName); err != nil {
			return err
		}
	}
	cfg.Level = level

	l, err := cfg.Build(zap.Fields(zap.String("env", environment)))
	if err != nil {
		return err
	}

	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

// SetLevel changes the level of the running logger.
func SetLevel(name string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	level.SetLevel(lvl)
	return nil
}

// Get returns the process logger, or a production logger when Init was never called.
func Get() *zap.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global, _ = zap.NewProductionConfig().Build()
	}
	return global
}

// With returns a child logger carrying fields on every entry.
func With(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

func Close() error {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return nil
	}
	return global.Sync()
}

func Info(msg string, fields ...zap.Field)  { Get().Info(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Get().Error(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { Get().Debug(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Get().Warn(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { Get().Fatal(msg, fields...) }
