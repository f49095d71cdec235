package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// Settings — key/value-хранилище служебных настроек. Флаг паузы обработки
// оплат живет здесь, чтобы переживать перезапуск процесса.
type Settings struct {
	db *sql.DB
}

func NewSettings(db *sql.DB) *Settings {
	return &Settings{db: db}
}

// GetBool возвращает значение флага. Отсутствие записи — не ошибка,
// флаг считается снятым.
func (r *Settings) GetBool(ctx context.Context, key string) (bool, error) {
	value := ""
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = $1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return value == "true", nil
}

func (r *Settings) SetBool(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = $2",
		key, strconv.FormatBool(value),
	)

	return err
}
