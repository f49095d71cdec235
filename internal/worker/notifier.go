package worker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/oripovb/orderpay/internal/entity"
	"github.com/oripovb/orderpay/internal/logger"
	"go.uber.org/zap"
)

// Notifier отправляет уведомления из очереди в чаты. Для отправки создается
// Notifier.workersCount воркеров. Отказ отправки логируется и не влияет
// на остальные уведомления: очередь — сторона "best effort".
type Notifier struct {
	gateway      NotifierGateway
	queue        <-chan entity.Notification
	wg           *sync.WaitGroup
	workersCount int
}

type NotifierGateway interface {
	SendMessage(ctx context.Context, chatID int64, text string) (json.RawMessage, error)
}

func NewNotifier(g NotifierGateway, q <-chan entity.Notification, wg *sync.WaitGroup, w int) *Notifier {
	return &Notifier{
		gateway:      g,
		queue:        q,
		wg:           wg,
		workersCount: w,
	}
}

func (n *Notifier) Do(ctx context.Context) {
	for i := 0; i < n.workersCount; i++ {
		n.wg.Add(1)

		go n.worker(ctx)
	}
}

func (n *Notifier) worker(ctx context.Context) {
	defer n.wg.Done()

	for {
		select {
		case notification, ok := <-n.queue:
			if !ok {
				return
			}

			if _, err := n.gateway.SendMessage(ctx, notification.ChatID, notification.Text); err != nil {
				logger.Log.Error("не удалось отправить уведомление",
					zap.Int64("chatID", notification.ChatID),
					zap.Error(err),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
