package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oripovb/orderpay/internal/client"
	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
)

type Payment struct {
	initiator PaymentInitiator
}

type PaymentInitiator interface {
	SendPaymentRequest(ctx context.Context, order entity.Order) (json.RawMessage, error)
}

func NewPayment(p PaymentInitiator) *Payment {
	return &Payment{initiator: p}
}

// Send обрабатывает запрос оператора на отправку счета покупателю.
// Возвращает 400 при отсутствии chat_id или нечитаемом составе заказа,
// 409 во время паузы и 500 с описанием платформы при отказе доставки.
func (h *Payment) Send(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Order json.RawMessage `json:"order"`
	}{}
	if err := readJSONBody(&req, r); err != nil || len(req.Order) == 0 {
		errorAsJSON(w, "Order data is required", "", http.StatusBadRequest)

		return
	}

	order := entity.Order{}
	if err := json.Unmarshal(req.Order, &order); err != nil {
		errorAsJSON(w, "Invalid order items format", err.Error(), http.StatusBadRequest)

		return
	}

	result, err := h.initiator.SendPaymentRequest(r.Context(), order)
	if err != nil {
		apiErr := &client.APIError{}
		switch {
		case errors.Is(err, inerr.ErrMissingRecipient):
			errorAsJSON(w, "Chat ID not found for this order", "", http.StatusBadRequest)
		case errors.Is(err, inerr.ErrInvalidOrderData):
			errorAsJSON(w, "Invalid order items format", "", http.StatusBadRequest)
		case errors.Is(err, inerr.ErrPaymentsPaused):
			errorAsJSON(w, "Payment processing is paused", "", http.StatusConflict)
		case errors.As(err, &apiErr):
			errorAsJSON(w, "Failed to send message to Telegram", apiErr.Description, http.StatusInternalServerError)
		default:
			errorAsJSON(w, "Failed to send payment request", err.Error(), http.StatusInternalServerError)
		}

		return
	}

	resp := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{
		Success: true,
		Data:    result,
	}
	responseAsJSON(w, resp, http.StatusOK)
}
