package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Gramm     int     `json:"gramm,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type LineItems []LineItem

// UnmarshalJSON принимает состав заказа и в виде массива, и в виде строки
// с сериализованным массивом: в хранилище встречаются оба представления.
// Разбор выполняется один раз на границе, дальше по коду ходит только LineItems.
func (l *LineItems) UnmarshalJSON(b []byte) error {
	var items []LineItem
	if err := json.Unmarshal(b, &items); err == nil {
		*l = items

		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("items is neither an array nor a string: %w", err)
	}

	return json.Unmarshal([]byte(s), (*[]LineItem)(l))
}

func (i *LineItem) UnmarshalJSON(b []byte) error {
	aux := struct {
		ProductID int             `json:"product_id"`
		Name      string          `json:"name"`
		Gramm     int             `json:"gramm"`
		Quantity  json.RawMessage `json:"quantity"`
		Price     json.RawMessage `json:"price"`
	}{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	quantity, err := toNumber(aux.Quantity)
	if err != nil {
		return fmt.Errorf("line item quantity: %w", err)
	}

	price, err := toNumber(aux.Price)
	if err != nil {
		return fmt.Errorf("line item price: %w", err)
	}

	*i = LineItem{
		ProductID: aux.ProductID,
		Name:      aux.Name,
		Gramm:     aux.Gramm,
		Quantity:  int(quantity),
		Price:     price,
	}

	return nil
}

// ParseLineItems разбирает текстовое представление состава заказа из хранилища.
func ParseLineItems(raw string) (LineItems, error) {
	if raw == "" {
		return nil, nil
	}

	items := LineItems{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	return items, nil
}

func toNumber(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("value is missing")
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("value %s is not a number", raw)
	}

	return strconv.ParseFloat(s, 64)
}
