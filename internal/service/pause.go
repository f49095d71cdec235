package service

import (
	"context"

	"github.com/oripovb/orderpay/internal/logger"
	"go.uber.org/zap"
)

// PauseGate — общий для всего процесса переключатель автоматической обработки
// оплат. Состояние хранится в настройках, поэтому переживает перезапуск.
// Переключение действует только на будущие события: обработка, прошедшая
// проверку, завершается как обычно.
type PauseGate struct {
	settings SettingsRepository
}

type SettingsRepository interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

const pauseKey = "payments_paused"

func NewPauseGate(r SettingsRepository) *PauseGate {
	return &PauseGate{settings: r}
}

// IsPaused читается один раз в начале обработки каждого события.
// Ошибка чтения не останавливает обработку: по умолчанию она включена.
func (g *PauseGate) IsPaused(ctx context.Context) bool {
	paused, err := g.settings.GetBool(ctx, pauseKey)
	if err != nil {
		logger.Log.Error("не удалось прочитать флаг паузы", zap.Error(err))

		return false
	}

	return paused
}

func (g *PauseGate) SetPaused(ctx context.Context, paused bool) error {
	return g.settings.SetBool(ctx, pauseKey, paused)
}
