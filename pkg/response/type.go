package response

import (
	"encoding/json"
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

// Date is a calendar date that marshals as DateFormat. Trip dates travel
// through the API in this shape.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Date. null and "" leave
// the date unset, mirroring an absent field.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a %q string: %w", DateFormat, err)
	}
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("date must be %q: %w", DateFormat, err)
	}
	*d = Date(t)
	return nil
}

// Time converts back to the underlying time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// DateTime is a timestamp that marshals as DateTimeFormat. Session
// creation times travel through the API in this shape.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime. null and ""
// leave the timestamp unset, mirroring an absent field.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime must be a %q string: %w", DateTimeFormat, err)
	}
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateTimeFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("datetime must be %q: %w", DateTimeFormat, err)
	}
	*d = DateTime(t)
	return nil
}

// Time converts back to the underlying time.Time.
func (d DateTime) Time() time.Time { return time.Time(d) }
