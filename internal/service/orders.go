package service

import (
	"context"

	"github.com/oripovb/orderpay/internal/entity"
)

// Orders — операции консоли заказов: ручное создание и смена статусов.
type Orders struct {
	repository OrderRepository
}

type OrderRepository interface {
	Create(ctx context.Context, order entity.Order) (int, error)
	FindByID(ctx context.Context, orderID int) (*entity.Order, error)
	FindAll(ctx context.Context) ([]entity.Order, error)
	UpdateDeliveryStatus(ctx context.Context, orderID int, status entity.DeliveryStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID int, status entity.PaymentStatus) error
}

func NewOrders(r OrderRepository) *Orders {
	return &Orders{repository: r}
}

func (s *Orders) Create(ctx context.Context, order entity.Order) (int, error) {
	return s.repository.Create(ctx, order)
}

func (s *Orders) Get(ctx context.Context, orderID int) (*entity.Order, error) {
	return s.repository.FindByID(ctx, orderID)
}

func (s *Orders) GetAll(ctx context.Context) ([]entity.Order, error) {
	return s.repository.FindAll(ctx)
}

func (s *Orders) UpdateDeliveryStatus(ctx context.Context, orderID int, status entity.DeliveryStatus) error {
	return s.repository.UpdateDeliveryStatus(ctx, orderID, status)
}

func (s *Orders) UpdatePaymentStatus(ctx context.Context, orderID int, status entity.PaymentStatus) error {
	return s.repository.UpdatePaymentStatus(ctx, orderID, status)
}
