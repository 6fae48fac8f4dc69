// Package money holds presentation helpers for amounts stored as float64.
package money

import "github.com/shopspring/decimal"

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format2 renders v with exactly two decimal places, e.g. "1079.18".
func Format2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
