package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type OrderManagerMock struct {
	mock.Mock
}

func (m *OrderManagerMock) Create(ctx context.Context, order entity.Order) (int, error) {
	args := m.Called(ctx, order)

	return args.Int(0), args.Error(1)
}

func (m *OrderManagerMock) Get(ctx context.Context, orderID int) (*entity.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *OrderManagerMock) GetAll(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entity.Order)

	return orders, args.Error(1)
}

func (m *OrderManagerMock) UpdateDeliveryStatus(ctx context.Context, orderID int, status entity.DeliveryStatus) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *OrderManagerMock) UpdatePaymentStatus(ctx context.Context, orderID int, status entity.PaymentStatus) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func TestOrder_Create(t *testing.T) {
	body := `{"order_number":"1001","chat_id":100500,"client_name":"Алишер","items":[{"product_id":1,"name":"Box A","quantity":2,"price":10000}],"total_price":20000}`

	tests := []struct {
		name       string
		body       string
		prepare    func(manager *OrderManagerMock, validator *ValidatorMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "успешное создание заказа",
			body: body,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.
					On("Create", mock.Anything, mock.MatchedBy(func(order entity.Order) bool {
						return order.Number == "1001" && order.ChatID == 100500 && order.TotalPrice == 20000
					})).
					Return(7, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":7}`,
		},
		{
			name: "номер заказа уже занят",
			body: body,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.On("Create", mock.Anything, mock.Anything).Return(0, inerr.ErrOrderExists).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "запрос не проходит проверку",
			body: `{"order_number":"1001"}`,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "нечитаемое тело запроса",
			body:       "{",
			prepare:    func(manager *OrderManagerMock, validator *ValidatorMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ошибка хранилища",
			body: body,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.On("Create", mock.Anything, mock.Anything).Return(0, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &OrderManagerMock{}
			validator := &ValidatorMock{}
			tt.prepare(manager, validator)
			h := NewOrder(manager, validator)

			resp := sendTestRequest(t, http.MethodPost, strings.NewReader(tt.body), h.Create)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, readBody(t, resp))
			}
			manager.AssertExpectations(t)
		})
	}
}

func TestOrder_Get(t *testing.T) {
	order := &entity.Order{
		ID:             7,
		Number:         "1001",
		ChatID:         100500,
		DeliveryStatus: entity.DeliveryStatusNew,
		PaymentStatus:  entity.PaymentStatusPending,
		TotalPrice:     20000,
		CreatedAt:      time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		id         string
		prepare    func(manager *OrderManagerMock)
		wantStatus int
	}{
		{
			name: "заказ найден",
			id:   "7",
			prepare: func(manager *OrderManagerMock) {
				manager.On("Get", mock.Anything, 7).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "заказ не найден",
			id:   "8",
			prepare: func(manager *OrderManagerMock) {
				manager.On("Get", mock.Anything, 8).Return(nil, inerr.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "нечисловой id",
			id:         "abc",
			prepare:    func(manager *OrderManagerMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ошибка хранилища",
			id:   "7",
			prepare: func(manager *OrderManagerMock) {
				manager.On("Get", mock.Anything, 7).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &OrderManagerMock{}
			tt.prepare(manager)
			h := NewOrder(manager, &ValidatorMock{})

			resp := sendTestRequestWithParam(t, http.MethodGet, "id", tt.id, nil, h.Get)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			manager.AssertExpectations(t)
		})
	}
}

func TestOrder_GetAll(t *testing.T) {
	orders := []entity.Order{{ID: 2, Number: "1002"}, {ID: 1, Number: "1001"}}

	tests := []struct {
		name       string
		prepare    func(manager *OrderManagerMock)
		wantStatus int
	}{
		{
			name: "список заказов",
			prepare: func(manager *OrderManagerMock) {
				manager.On("GetAll", mock.Anything).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "заказов нет",
			prepare: func(manager *OrderManagerMock) {
				manager.On("GetAll", mock.Anything).Return([]entity.Order{}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "ошибка хранилища",
			prepare: func(manager *OrderManagerMock) {
				manager.On("GetAll", mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &OrderManagerMock{}
			tt.prepare(manager)
			h := NewOrder(manager, &ValidatorMock{})

			resp := sendTestRequest(t, http.MethodGet, nil, h.GetAll)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			manager.AssertExpectations(t)
		})
	}
}

func TestOrder_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		prepare    func(manager *OrderManagerMock, validator *ValidatorMock)
		wantStatus int
	}{
		{
			name: "обновление обоих статусов",
			id:   "7",
			body: `{"delivery_status":"delivering","payment_status":"paid"}`,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.On("UpdateDeliveryStatus", mock.Anything, 7, entity.DeliveryStatusDelivering).Return(nil).Once()
				manager.On("UpdatePaymentStatus", mock.Anything, 7, entity.PaymentStatusPaid).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "обновление только статуса доставки",
			id:   "7",
			body: `{"delivery_status":"completed"}`,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.On("UpdateDeliveryStatus", mock.Anything, 7, entity.DeliveryStatusCompleted).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "оба статуса пусты",
			id:         "7",
			body:       `{}`,
			prepare:    func(manager *OrderManagerMock, validator *ValidatorMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "недопустимое значение статуса",
			id:   "7",
			body: `{"delivery_status":"shipped"}`,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "заказ не найден",
			id:   "8",
			body: `{"payment_status":"failed"}`,
			prepare: func(manager *OrderManagerMock, validator *ValidatorMock) {
				validator.On("Struct", mock.Anything, mock.Anything).Return(nil).Once()
				manager.On("UpdatePaymentStatus", mock.Anything, 8, entity.PaymentStatusFailed).Return(inerr.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "нечисловой id",
			id:         "abc",
			body:       `{"payment_status":"paid"}`,
			prepare:    func(manager *OrderManagerMock, validator *ValidatorMock) {},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &OrderManagerMock{}
			validator := &ValidatorMock{}
			tt.prepare(manager, validator)
			h := NewOrder(manager, validator)

			resp := sendTestRequestWithParam(t, http.MethodPatch, "id", tt.id, strings.NewReader(tt.body), h.UpdateStatus)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			manager.AssertExpectations(t)
		})
	}
}
