// Package money provides safe numeric coercion for monetary values.
//
// Upstream sources are sloppy about representation: a balance may arrive as a
// float, an integer, a numeric string ("1234.56"), or nothing at all. Every
// amount passes through ToFinite exactly once at the ingestion boundary, so
// downstream arithmetic operates on plain float64 values and NaN/Inf can
// never propagate into sums.
package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFinite converts a value of unknown representation into a finite float64.
// Numbers are passed through, numeric strings are parsed, and everything
// else (nil, unparsable strings, NaN, Inf, unexpected types) becomes 0.
// It never panics.
func ToFinite(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return parseFinite(n.String())
	case string:
		return parseFinite(n)
	case []byte:
		// database/sql hands TEXT columns over as []byte
		return parseFinite(string(n))
	default:
		return 0
	}
}

func parseFinite(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// RoundCents rounds a float to 2 decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
