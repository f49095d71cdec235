package handler

import (
	"context"
	"net/http"

	"github.com/oripovb/orderpay/internal/entity"
	"github.com/oripovb/orderpay/internal/logger"
	"go.uber.org/zap"
)

type Webhook struct {
	engine UpdateProcessor
}

type UpdateProcessor interface {
	HandleUpdate(ctx context.Context, update entity.Update) error
}

func NewWebhook(e UpdateProcessor) *Webhook {
	return &Webhook{engine: e}
}

// Receive принимает событие от платформы. Любой обработанный исход, включая
// "заказ не найден" и паузу, подтверждается ответом 200 {"ok":true} — иначе
// платформа будет повторять доставку. Ошибки обработки уходят только в лог.
func (h *Webhook) Receive(w http.ResponseWriter, r *http.Request) {
	update := entity.Update{}
	if err := readJSONBody(&update, r); err != nil {
		badRequest(w)

		return
	}

	if err := h.engine.HandleUpdate(r.Context(), update); err != nil {
		logger.Log.Error("ошибка обработки события вебхука",
			zap.Int("updateID", update.UpdateID),
			zap.Error(err),
		)
	}

	responseAsJSON(w, struct {
		OK bool `json:"ok"`
	}{OK: true}, http.StatusOK)
}
