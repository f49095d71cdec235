package logger

import "go.uber.org/zap"

// Log доступен всем пакетам сервиса. До вызова Initialize ничего не пишет,
// поэтому пакеты безопасно использовать в тестах без инициализации.
var Log = zap.NewNop()

func Initialize(level string) error {
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

	Log = zl

	return nil
}
