package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Money is a price value that accepts both JSON numbers and numeric strings
// ("25.50"), since client-side forms routinely submit prices as text. It
// always marshals back as a number.
type Money float64

// UnmarshalJSON accepts 25.5, "25.50" and null (left as zero).
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		unquoted = strings.TrimSpace(unquoted)
		if unquoted == "" {
			return nil
		}
		v, err := strconv.ParseFloat(unquoted, 64)
		if err != nil {
			return err
		}
		*m = Money(v)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// MarshalJSON emits the value as a plain number.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}
