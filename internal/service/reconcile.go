package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
	"github.com/oripovb/orderpay/internal/logger"
	"go.uber.org/zap"
)

// Reconciler связывает входящие скриншоты оплаты с заказами. Каждое событие
// обрабатывается независимо, состояния между событиями нет. Повторная доставка
// того же события сходится к тому же итоговому состоянию заказа: обновление —
// полная перезапись тех же полей по заново найденному id.
type Reconciler struct {
	orders        ReconcilerRepository
	gateway       Gateway
	pause         Pauser
	adminChatID   int64
	notifications chan<- entity.Notification
}

type ReconcilerRepository interface {
	FindLatestByChatID(ctx context.Context, chatID int64) (*entity.Order, error)
	AttachPaymentProof(ctx context.Context, orderID int, url string) error
}

type Gateway interface {
	SendMessage(ctx context.Context, chatID int64, text string) (json.RawMessage, error)
	ResolveFileURL(ctx context.Context, fileID string) (string, error)
}

func NewReconciler(
	r ReconcilerRepository,
	g Gateway,
	p Pauser,
	adminChatID int64,
	notifications chan<- entity.Notification,
) *Reconciler {
	return &Reconciler{
		orders:        r,
		gateway:       g,
		pause:         p,
		adminChatID:   adminChatID,
		notifications: notifications,
	}
}

// HandleUpdate обрабатывает одно событие вебхука. Все ошибки гасятся на этом
// уровне: покупатель получает ровно одно сообщение (подтверждение, "заказ не
// найден" или извинение), а транспорт подтверждает доставку в любом случае.
// Возвращаемая ошибка нужна только для журнала оператора.
func (s *Reconciler) HandleUpdate(ctx context.Context, update entity.Update) error {
	msg := update.Message
	if msg == nil {
		return nil
	}

	if len(msg.Photo) == 0 {
		s.handleText(ctx, msg)

		return nil
	}

	return s.handleScreenshot(ctx, msg.Chat.ID, msg.Photo)
}

func (s *Reconciler) handleScreenshot(ctx context.Context, chatID int64, photo []entity.PhotoSize) error {
	if s.pause.IsPaused(ctx) {
		logger.Log.Info("обработка оплат приостановлена, событие пропущено", zap.Int64("chatID", chatID))

		return nil
	}

	// Последний вариант фото — самое высокое разрешение.
	fileID := photo[len(photo)-1].FileID
	url, err := s.gateway.ResolveFileURL(ctx, fileID)
	if err != nil {
		s.send(ctx, chatID, genericErrorMsg())

		return err
	}

	order, err := s.orders.FindLatestByChatID(ctx, chatID)
	if errors.Is(err, inerr.ErrNoOrderForChat) {
		s.send(ctx, chatID, orderNotFoundMsg())

		return nil
	}
	if err != nil {
		s.send(ctx, chatID, genericErrorMsg())

		return err
	}

	if err := s.orders.AttachPaymentProof(ctx, order.ID, url); err != nil {
		s.send(ctx, chatID, genericErrorMsg())

		return err
	}

	logger.Log.Info("скриншот оплаты сохранен",
		zap.String("orderNumber", order.Number),
		zap.Int64("chatID", chatID),
	)
	s.send(ctx, chatID, paymentReceivedMsg())
	s.notifyAdmin(order, url)

	return nil
}

// handleText отвечает на служебные команды. Никогда не мешает обработке фото.
func (s *Reconciler) handleText(ctx context.Context, msg *entity.Message) {
	switch strings.TrimSpace(msg.Text) {
	case "/start", "/help":
		s.send(ctx, msg.Chat.ID, helpMsg())
	case "/status":
		order, err := s.orders.FindLatestByChatID(ctx, msg.Chat.ID)
		if errors.Is(err, inerr.ErrNoOrderForChat) {
			s.send(ctx, msg.Chat.ID, orderNotFoundMsg())

			return
		}
		if err != nil {
			logger.Log.Error("не удалось найти заказ для команды /status",
				zap.Int64("chatID", msg.Chat.ID),
				zap.Error(err),
			)

			return
		}

		s.send(ctx, msg.Chat.ID, orderStatusMsg(order))
	}
}

// notifyAdmin ставит уведомление администратора в очередь. Канал — граница
// "отправили и забыли": отказ уведомления не откатывает ни подтверждение
// покупателю, ни сохраненный статус.
func (s *Reconciler) notifyAdmin(order *entity.Order, screenshotURL string) {
	if s.adminChatID == 0 || s.notifications == nil {
		return
	}

	text := adminPaymentMsg(order, screenshotURL)
	go func() {
		s.notifications <- entity.Notification{ChatID: s.adminChatID, Text: text}
	}()
}

func (s *Reconciler) send(ctx context.Context, chatID int64, text string) {
	if _, err := s.gateway.SendMessage(ctx, chatID, text); err != nil {
		logger.Log.Error("не удалось отправить сообщение",
			zap.Int64("chatID", chatID),
			zap.Error(err),
		)
	}
}
