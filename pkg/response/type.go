package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// UnmarshalJSON accepts DateFormat strings. The date is anchored at UTC midnight;
// callers re-anchor it in the scheduling timezone.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return fmt.Errorf("date must be %s: %w", DateFormat, err)
	}
	*d = Date(t)
	return nil
}

// DateTime is a wall-clock datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// ParseDateTime accepts RFC 3339 or a DateTimeFormat wall-clock value, which is
// read in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation(DateTimeFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime must be RFC 3339 or %s", DateTimeFormat)
	}
	return t, nil
}

// ParseSlotTime is ParseDateTime for scheduled times, which are stored at
// minute precision. Seconds or fractions are rejected rather than dropped.
func ParseSlotTime(s string, loc *time.Location) (time.Time, error) {
	t, err := ParseDateTime(s, loc)
	if err != nil {
		return t, err
	}
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return time.Time{}, errors.New("datetime must be a whole minute")
	}
	return t, nil
}
