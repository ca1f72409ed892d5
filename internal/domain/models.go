package domain

import (
	"encoding/json"
	"time"
)

// Variant is a purchasable configuration of a product, distinguished by
// color, with its own stock count and image. The first variant in the
// slice is the default selection on the product page.
type Variant struct {
	Color    string `json:"color"`
	ImageURL string `json:"imageUrl"`
	Stock    int64  `json:"stock"`
}

// Product is a catalog item. Price is a fixed-point string with two
// fraction digits, exactly as it is serialized on the wire and in the
// store file.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Stock       int64     `json:"stock"`
	Categoria   string    `json:"categoria"`
	Destaque    bool      `json:"destaque"`
	ImageURL    string    `json:"imageUrl"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Order is a submitted checkout. Besides the assigned id and date, the
// client payload (cart snapshot, shipping info) is stored as-is,
// unvalidated, so the record round-trips as one flat JSON object.
type Order struct {
	ID      int64
	Date    string
	Payload map[string]json.RawMessage
}

// ISODateLayout is the millisecond-precision ISO-8601 format order
// dates are stored in.
const ISODateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatOrderDate renders t as an order date string in UTC.
func FormatOrderDate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

func (o Order) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(o.Payload)+2)
	for k, v := range o.Payload {
		m[k] = v
	}
	id, err := json.Marshal(o.ID)
	if err != nil {
		return nil, err
	}
	date, err := json.Marshal(o.Date)
	if err != nil {
		return nil, err
	}
	m["id"] = id
	m["date"] = date
	return json.Marshal(m)
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if raw, ok := m["id"]; ok {
		if err := json.Unmarshal(raw, &o.ID); err != nil {
			return err
		}
		delete(m, "id")
	}
	if raw, ok := m["date"]; ok {
		if err := json.Unmarshal(raw, &o.Date); err != nil {
			return err
		}
		delete(m, "date")
	}
	o.Payload = m
	return nil
}
