package task

import (
	"strings"
	"time"
)

// isoLayout is the backend's wire format: Python isoformat() without a zone.
const isoLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time with a codec for the backend's bare ISO-8601
// timestamps. RFC 3339 input is accepted too, so clients pointed at stricter
// backends keep working.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// UnmarshalJSON parses a timestamp from any of the accepted layouts.
// Empty strings and nulls decode to the zero value.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		ts.Time = time.Time{}
		return nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

// MarshalJSON emits the backend's layout, or null for the zero value.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ts.Format(isoLayout) + `"`), nil
}

// Day returns the timestamp's local calendar date as an ISO date string.
func (ts Timestamp) Day() string {
	return ts.Local().Format("2006-01-02")
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(isoLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
