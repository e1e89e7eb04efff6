package money

import "encoding/json"

// Amount is a monetary value that tolerates sloppy wire and storage
// representations. It unmarshals from a JSON number, a JSON string, or null,
// and scans from any database column type, coercing through ToFinite in
// every case. Decoding never fails; garbage becomes 0.
type Amount float64

// Float64 returns the coerced value as a plain float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(ToFinite(raw))
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Scan implements sql.Scanner so TEXT, REAL, and INTEGER columns all land
// on the same coerced value.
func (a *Amount) Scan(src any) error {
	*a = Amount(ToFinite(src))
	return nil
}
