// Package logger builds the zap logger shared by every component.
package logger

import (
	"go.uber.org/zap"
)

// Logger owns the process logger. Log is a no-op logger until Init succeeds.
type Logger struct {
	Log *zap.Logger
}

func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init replaces Log with a production logger at the given level.
func (l *Logger) Init(level string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	// все записи помечаются именем сервиса
	l.Log = zl.With(zap.String("service", "links"))
	return nil
}

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}
