package usecase

import (
	"bytes"
	"encoding/json"
	"time"

	"farmlink/internal/errors"
)

// Date is a calendar date accepted as "2006-01-02" or a full RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t

			return nil
		}
	}

	return errors.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

// TimePtr converts an optional Date into the entity representation.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time

	return &t
}
