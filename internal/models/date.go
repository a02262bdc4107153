package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/magabrotheeeer/user-subscription-api/internal/lib/validation"
)

// Date: календарная дата без времени, в JSON записывается как "YYYY-MM-DD".
type Date struct {
	time.Time
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(validation.DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("models.ParseDate: %w", err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(validation.DateLayout)
}

// MarshalJSON реализует json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON реализует json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
