package errors

import "errors"

var (
	ErrMissingRecipient = errors.New("order has no chat id")
	ErrInvalidOrderData = errors.New("invalid order items")
	ErrNoOrderForChat   = errors.New("no order found for chat")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderExists      = errors.New("order exists")
	ErrFileResolution   = errors.New("failed to resolve file url")
	ErrPaymentsPaused   = errors.New("payment processing is paused")
)
