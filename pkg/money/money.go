// Package money checks the monetary amounts stored in decimal(18,2) columns.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxAmount is the largest value a decimal(18,2) column holds.
var maxAmount = decimal.New(1, 16)

// PositiveCents reports whether v is a finite amount above zero with at most
// two decimal places that fits the storage column.
func PositiveCents(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || !(v > 0) {
		return false
	}
	d := decimal.NewFromFloat(v)
	return d.Equal(d.Round(2)) && d.LessThan(maxAmount)
}
