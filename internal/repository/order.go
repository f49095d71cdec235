package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oripovb/orderpay/internal/entity"
	inerr "github.com/oripovb/orderpay/internal/errors"
)

type Order struct {
	db *sql.DB
}

func NewOrder(db *sql.DB) *Order {
	return &Order{db: db}
}

// Create добавляет заказ, созданный оператором вручную. Если номер заказа
// уже занят, возвращает ошибку errors.ErrOrderExists.
func (r *Order) Create(ctx context.Context, order entity.Order) (int, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return 0, err
	}

	id := 0
	err = r.db.QueryRowContext(ctx, `
INSERT INTO orders (order_number, chat_id, client_name, phone, tg_username, items, total_price)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
	`, order.Number, nullableChatID(order.ChatID), order.ClientName, order.Phone, order.TgUsername, string(items), order.TotalPrice).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return 0, inerr.ErrOrderExists
	}

	return id, err
}

// FindLatestByChatID возвращает последний созданный заказ покупателя.
// Свежесть определяется по created_at, при равенстве выигрывает больший id.
// Если заказов нет, возвращает ошибку errors.ErrNoOrderForChat.
func (r *Order) FindLatestByChatID(ctx context.Context, chatID int64) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, order_number, chat_id, client_name, phone, tg_username, items, total_price, delivery_status, payment_status, payment_screenshot, created_at, updated_at
FROM orders
WHERE chat_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
	`, chatID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, inerr.ErrNoOrderForChat
	}

	return order, err
}

// AttachPaymentProof сохраняет ссылку на скриншот оплаты и помечает заказ
// оплаченным. Скриншот и статус записываются одним запросом, адресованным
// по id заказа, поэтому более новый заказ того же покупателя не пострадает.
func (r *Order) AttachPaymentProof(ctx context.Context, orderID int, url string) error {
	result, err := r.db.ExecContext(
		ctx,
		"UPDATE orders SET payment_screenshot = $1, payment_status = 'paid', updated_at = now() WHERE id = $2",
		url, orderID,
	)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func (r *Order) FindByID(ctx context.Context, orderID int) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, order_number, chat_id, client_name, phone, tg_username, items, total_price, delivery_status, payment_status, payment_screenshot, created_at, updated_at
FROM orders
WHERE id = $1
	`, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, inerr.ErrOrderNotFound
	}

	return order, err
}

// FindAll возвращает заказы от самых новых к самым старым.
func (r *Order) FindAll(ctx context.Context) (orders []entity.Order, err error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, order_number, chat_id, client_name, phone, tg_username, items, total_price, delivery_status, payment_status, payment_screenshot, created_at, updated_at
FROM orders
ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}

	defer func(rows *sql.Rows) {
		err = rows.Close()
	}(rows)

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}

		orders = append(orders, *order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, err
}

func (r *Order) UpdateDeliveryStatus(ctx context.Context, orderID int, status entity.DeliveryStatus) error {
	result, err := r.db.ExecContext(
		ctx,
		"UPDATE orders SET delivery_status = $1, updated_at = now() WHERE id = $2",
		status, orderID,
	)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func (r *Order) UpdatePaymentStatus(ctx context.Context, orderID int, status entity.PaymentStatus) error {
	result, err := r.db.ExecContext(
		ctx,
		"UPDATE orders SET payment_status = $1, updated_at = now() WHERE id = $2",
		status, orderID,
	)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*entity.Order, error) {
	var (
		order      entity.Order
		chatID     sql.NullInt64
		items      string
		screenshot sql.NullString
	)
	if err := s.Scan(
		&order.ID,
		&order.Number,
		&chatID,
		&order.ClientName,
		&order.Phone,
		&order.TgUsername,
		&items,
		&order.TotalPrice,
		&order.DeliveryStatus,
		&order.PaymentStatus,
		&screenshot,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := entity.ParseLineItems(items)
	if err != nil {
		return nil, err
	}

	order.ChatID = chatID.Int64
	order.PaymentScreenshot = screenshot.String
	order.Items = parsed

	return &order, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return inerr.ErrOrderNotFound
	}

	return nil
}

func nullableChatID(chatID int64) sql.NullInt64 {
	return sql.NullInt64{Int64: chatID, Valid: chatID != 0}
}
