package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// JSONDocument is a JSON object stored in a CLOB column.
type JSONDocument map[string]interface{}

// Value implements the driver.Valuer interface
func (d JSONDocument) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (d *JSONDocument) Scan(value interface{}) error {
	if value == nil {
		*d = JSONDocument{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case fmt.Stringer:
		raw = []byte(v.String())
	default:
		return errors.New("JSONDocument Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 || string(raw) == "null" {
		*d = JSONDocument{}
		return nil
	}

	doc := JSONDocument{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("JSONDocument Scan: %w", err)
	}
	*d = doc
	return nil
}

// Course is a row of the COURSES table.
type Course struct {
	ID        string       `db:"ID"`
	Data      JSONDocument `db:"DATA"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
}

func (Course) TableName() string {
	return "courses"
}
