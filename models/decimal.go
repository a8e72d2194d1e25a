// ABOUTME: Decimal wrapper for server-side money fields
// ABOUTME: Accepts both string and number JSON encodings

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decimal holds a money amount as serialized by the API. Django REST
// Framework renders DecimalFields as strings ("45000.00") but aggregate
// totals can arrive as bare numbers, so decoding accepts both. The raw
// text is kept so values round-trip without float formatting drift.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	// Bare number: keep its text form.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decimal must be a string or number: %w", err)
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte(`"0.00"`), nil
	}
	return json.Marshal(string(d))
}

// Float parses the amount for arithmetic-free display rounding only.
// Cart totals are never recomputed client-side from item math; they
// come from the server response.
func (d Decimal) Float() (float64, error) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func (d Decimal) String() string {
	if d == "" {
		return "0.00"
	}
	return string(d)
}
