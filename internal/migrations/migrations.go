package migrations

import (
	"database/sql"

	"github.com/lopezator/migrator"
)

func Up(db *sql.DB) error {
	m, err := migrator.New(
		migrator.Migrations(
			&migrator.MigrationNoTx{
				Name: "Create orders table",
				Func: createOrdersTable,
			},
			&migrator.MigrationNoTx{
				Name: "Create settings table",
				Func: createSettingsTable,
			},
		),
	)
	if err != nil {
		return err
	}

	return m.Migrate(db)
}

func createOrdersTable(db *sql.DB) error {
	if _, err := db.Exec("CREATE TYPE delivery_status AS ENUM ('new', 'processing', 'delivering', 'completed', 'cancelled')"); err != nil {
		return err
	}

	if _, err := db.Exec("CREATE TYPE payment_status AS ENUM ('pending', 'paid', 'failed')"); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE orders
(
    id                 integer GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    order_number       varchar(20)     NOT NULL UNIQUE,
    chat_id            bigint,
    client_name        varchar(100)    NOT NULL DEFAULT '',
    phone              varchar(20)     NOT NULL DEFAULT '',
    tg_username        varchar(100)    NOT NULL DEFAULT '',
    items              text            NOT NULL DEFAULT '[]',
    total_price        numeric(12, 2)  NOT NULL DEFAULT 0,
    CHECK (total_price >= 0),
    delivery_status    delivery_status NOT NULL DEFAULT 'new',
    payment_status     payment_status  NOT NULL DEFAULT 'pending',
    payment_screenshot text,
    created_at         timestamptz     NOT NULL DEFAULT now(),
    updated_at         timestamptz     NOT NULL DEFAULT now()
)
	`); err != nil {
		return err
	}

	_, err := db.Exec("CREATE INDEX orders_chat_id_created_at_idx ON orders (chat_id, created_at DESC)")

	return err
}

func createSettingsTable(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE settings
(
    key   varchar(50)  PRIMARY KEY,
    value varchar(100) NOT NULL
)
	`)

	return err
}
