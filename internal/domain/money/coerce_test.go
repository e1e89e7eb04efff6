package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFinite(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", 42.5, 42.5},
		{"negative float64", -17.25, -17.25},
		{"float32", float32(2.5), 2.5},
		{"int", 100, 100},
		{"int64", int64(-3), -3},
		{"numeric string", "1234.56", 1234.56},
		{"numeric string with spaces", "  99.9 ", 99.9},
		{"negative numeric string", "-50", -50},
		{"scientific notation string", "1e3", 1000},
		{"empty string", "", 0},
		{"garbage string", "not-a-number", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"map", map[string]any{"a": 1}, 0},
		{"slice", []int{1, 2}, 0},
		{"NaN", math.NaN(), 0},
		{"positive Inf", math.Inf(1), 0},
		{"negative Inf", math.Inf(-1), 0},
		{"Inf string", "Inf", 0},
		{"NaN string", "NaN", 0},
		{"json.Number", json.Number("77.7"), 77.7},
		{"bytes", []byte("12.5"), 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFinite(tt.in)
			assert.False(t, math.IsNaN(got), "result must never be NaN")
			assert.False(t, math.IsInf(got, 0), "result must never be Inf")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Run("accepts number, string, and null in one document", func(t *testing.T) {
		var doc struct {
			A Amount `json:"a"`
			B Amount `json:"b"`
			C Amount `json:"c"`
			D Amount `json:"d"`
		}
		err := json.Unmarshal([]byte(`{"a": 12.5, "b": "99.90", "c": null, "d": "oops"}`), &doc)
		require.NoError(t, err)

		assert.Equal(t, 12.5, doc.A.Float64())
		assert.Equal(t, 99.9, doc.B.Float64())
		assert.Equal(t, 0.0, doc.C.Float64())
		assert.Equal(t, 0.0, doc.D.Float64())
	})

	t.Run("round-trips as a plain number", func(t *testing.T) {
		out, err := json.Marshal(Amount(150.75))
		require.NoError(t, err)
		assert.Equal(t, "150.75", string(out))
	})
}

func TestAmount_Scan(t *testing.T) {
	cases := []struct {
		name string
		src  any
		want float64
	}{
		{"text column", []byte("1500.00"), 1500},
		{"real column", 42.42, 42.42},
		{"integer column", int64(7), 7},
		{"null column", nil, 0},
		{"corrupt text", []byte("n/a"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, a.Scan(tc.src))
			assert.Equal(t, tc.want, a.Float64())
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.57, RoundCents(10.565))
	assert.Equal(t, -3.33, RoundCents(-3.3349))
	assert.Equal(t, 0.0, RoundCents(0))
}
