package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
)

type Order struct {
	manager   OrderManager
	validator Validator
}

type OrderManager interface {
	Create(ctx context.Context, order entity.Order) (int, error)
	Get(ctx context.Context, orderID int) (*entity.Order, error)
	GetAll(ctx context.Context) ([]entity.Order, error)
	UpdateDeliveryStatus(ctx context.Context, orderID int, status entity.DeliveryStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID int, status entity.PaymentStatus) error
}

func NewOrder(m OrderManager, v Validator) *Order {
	return &Order{
		manager:   m,
		validator: v,
	}
}

// Create обрабатывает ручное добавление заказа оператором. Возвращает ответ
// с кодом 201 и id созданного заказа, 409 — если номер заказа уже занят.
func (h *Order) Create(w http.ResponseWriter, r *http.Request) {
	req := CreateOrderRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		badRequest(w)

		return
	}

	id, err := h.manager.Create(r.Context(), entity.Order{
		Number:     req.Number,
		ChatID:     req.ChatID,
		ClientName: req.ClientName,
		Phone:      req.Phone,
		TgUsername: req.TgUsername,
		Items:      req.Items,
		TotalPrice: req.TotalPrice,
	})
	if errors.Is(err, inerr.ErrOrderExists) {
		w.WriteHeader(http.StatusConflict)

		return
	}
	if err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, struct {
		ID int `json:"id"`
	}{ID: id}, http.StatusCreated)
}

// Get возвращает заказ по id. Если заказа нет, возвращает ответ с кодом 404.
func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w)

		return
	}

	order, err := h.manager.Get(r.Context(), id)
	if errors.Is(err, inerr.ErrOrderNotFound) {
		w.WriteHeader(http.StatusNotFound)

		return
	}
	if err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, order, http.StatusOK)
}

// GetAll возвращает список заказов от самых новых к самым старым.
// Если заказов нет, возвращает ответ с кодом 204.
func (h *Order) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.manager.GetAll(r.Context())
	if err != nil {
		serverError(w)

		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	responseAsJSON(w, orders, http.StatusOK)
}

// UpdateStatus меняет статус доставки и/или оплаты заказа. Недопустимое
// значение статуса возвращает 422, пустой запрос — 400, неизвестный id — 404.
func (h *Order) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w)

		return
	}

	req := UpdateOrderStatusRequest{}
	if err := readJSONBody(&req, r); err != nil {
		badRequest(w)

		return
	}
	if req.DeliveryStatus == "" && req.PaymentStatus == "" {
		badRequest(w)

		return
	}
	if err := h.validator.Struct(r.Context(), &req); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)

		return
	}

	if req.DeliveryStatus != "" {
		err = h.manager.UpdateDeliveryStatus(r.Context(), id, entity.DeliveryStatus(req.DeliveryStatus))
	}
	if err == nil && req.PaymentStatus != "" {
		err = h.manager.UpdatePaymentStatus(r.Context(), id, entity.PaymentStatus(req.PaymentStatus))
	}

	if errors.Is(err, inerr.ErrOrderNotFound) {
		w.WriteHeader(http.StatusNotFound)

		return
	}
	if err != nil {
		serverError(w)

		return
	}

	w.WriteHeader(http.StatusOK)
}
