package service

import (
	"context"
	"encoding/json"

	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
	"github.com/oripovb/orderpay/internal/logger"
	"go.uber.org/zap"
)

// Payment отправляет покупателю счет по заказу. Заказ при этом не меняется:
// статус оплаты проставляет только обработчик скриншотов после получения
// подтверждения.
type Payment struct {
	gateway    PaymentGateway
	pause      Pauser
	cardNumber string
	cardHolder string
}

type PaymentGateway interface {
	SendMessage(ctx context.Context, chatID int64, text string) (json.RawMessage, error)
}

type Pauser interface {
	IsPaused(ctx context.Context) bool
}

func NewPayment(g PaymentGateway, p Pauser, cardNumber, cardHolder string) *Payment {
	return &Payment{
		gateway:    g,
		pause:      p,
		cardNumber: cardNumber,
		cardHolder: cardHolder,
	}
}

// SendPaymentRequest проверяет предусловия, формирует текст счета и отправляет
// его в чат покупателя. Без chat_id и без распознанного состава заказа запрос
// к платформе не выполняется. Отказ платформы не повторяется автоматически,
// оператор отправляет счет заново вручную.
func (s *Payment) SendPaymentRequest(ctx context.Context, order entity.Order) (json.RawMessage, error) {
	if s.pause.IsPaused(ctx) {
		return nil, inerr.ErrPaymentsPaused
	}
	if order.ChatID == 0 {
		return nil, inerr.ErrMissingRecipient
	}
	if len(order.Items) == 0 {
		return nil, inerr.ErrInvalidOrderData
	}

	result, err := s.gateway.SendMessage(ctx, order.ChatID, paymentRequestMsg(order, s.cardNumber, s.cardHolder))
	if err != nil {
		logger.Log.Error("не удалось отправить счет",
			zap.String("orderNumber", order.Number),
			zap.Int64("chatID", order.ChatID),
			zap.Error(err),
		)

		return nil, err
	}

	return result, nil
}
