package entity

import "time"

type Order struct {
	ID                int            `json:"id"`
	Number            string         `json:"order_number"`
	ChatID            int64          `json:"chat_id"`
	ClientName        string         `json:"client_name"`
	Phone             string         `json:"phone"`
	TgUsername        string         `json:"tg_username"`
	Items             LineItems      `json:"items"`
	TotalPrice        float64        `json:"total_price"`
	DeliveryStatus    DeliveryStatus `json:"delivery_status"`
	PaymentStatus     PaymentStatus  `json:"payment_status"`
	PaymentScreenshot string         `json:"payment_screenshot,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type DeliveryStatus string

const (
	DeliveryStatusNew        DeliveryStatus = "new"
	DeliveryStatusProcessing DeliveryStatus = "processing"
	DeliveryStatusDelivering DeliveryStatus = "delivering"
	DeliveryStatusCompleted  DeliveryStatus = "completed"
	DeliveryStatusCancelled  DeliveryStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Notification — задача на отправку сообщения в чат. Выполняется воркерами
// worker.Notifier, отказ отправки не влияет на основной поток обработки.
type Notification struct {
	ChatID int64
	Text   string
}
