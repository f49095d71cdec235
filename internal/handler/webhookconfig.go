package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oripovb/orderpay/internal/entity"
)

// WebhookConfig — операционные ручки регистрации вебхука. Прозрачно
// транслируют вызовы платформе, к горячему пути обработки не относятся.
type WebhookConfig struct {
	gateway   WebhookGateway
	validator Validator
}

type WebhookGateway interface {
	SetWebhook(ctx context.Context, url string) (json.RawMessage, error)
	DeleteWebhook(ctx context.Context) (json.RawMessage, error)
	GetWebhookInfo(ctx context.Context) (entity.WebhookInfo, error)
}

func NewWebhookConfig(g WebhookGateway, v Validator) *WebhookConfig {
	return &WebhookConfig{
		gateway:   g,
		validator: v,
	}
}

func (h *WebhookConfig) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.gateway.GetWebhookInfo(r.Context())
	if err != nil {
		errorAsJSON(w, "Failed to get webhook info", err.Error(), http.StatusInternalServerError)

		return
	}

	responseAsJSON(w, info, http.StatusOK)
}

func (h *WebhookConfig) Set(w http.ResponseWriter, r *http.Request) {
	req := SetWebhookRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		errorAsJSON(w, "Webhook URL is required", "", http.StatusBadRequest)

		return
	}

	result, err := h.gateway.SetWebhook(r.Context(), req.WebhookURL)
	if err != nil {
		errorAsJSON(w, "Failed to set webhook", err.Error(), http.StatusInternalServerError)

		return
	}

	responseAsJSON(w, result, http.StatusOK)
}

func (h *WebhookConfig) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.gateway.DeleteWebhook(r.Context())
	if err != nil {
		errorAsJSON(w, "Failed to delete webhook", err.Error(), http.StatusInternalServerError)

		return
	}

	responseAsJSON(w, result, http.StatusOK)
}
