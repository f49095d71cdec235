package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/oripovb/orderpay/internal/entity"
)

type CreateOrderRequest struct {
	Number     string           `json:"order_number" validate:"required,max=20"`
	ChatID     int64            `json:"chat_id"`
	ClientName string           `json:"client_name" validate:"required"`
	Phone      string           `json:"phone"`
	TgUsername string           `json:"tg_username"`
	Items      entity.LineItems `json:"items" validate:"required,min=1"`
	TotalPrice float64          `json:"total_price" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" validate:"omitempty,oneof=new processing delivering completed cancelled"`
	PaymentStatus  string `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
}

type SetWebhookRequest struct {
	WebhookURL string `json:"webhook_url" validate:"required,url"`
}

type SetPauseRequest struct {
	Paused *bool `json:"paused" validate:"required"`
}

type Validator interface {
	Struct(ctx context.Context, s any) error
	Var(ctx context.Context, field any, tag string) error
}

func readJSONBody(v any, r *http.Request) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

func readJSONBodyAndValidate(ctx context.Context, v any, r *http.Request, validator Validator) error {
	if err := readJSONBody(v, r); err != nil {
		return err
	}

	return validator.Struct(ctx, v)
}
