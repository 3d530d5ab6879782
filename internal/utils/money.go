package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Currency tags used in suggestion texts. They are cosmetic only.
const (
	DollarPrefix = "$"
	TakaSuffix   = "BDT"
)

// Fixed formats v with the given number of decimal places
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.*f", places, v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Dollars formats an amount as $1234.56
func Dollars(v float64) string {
	return DollarPrefix + Fixed(v, 2)
}

// Taka formats an amount as 1234.56 BDT
func Taka(v float64) string {
	return Fixed(v, 2) + " " + TakaSuffix
}

// Sum adds amounts without accumulating binary rounding drift
func Sum(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// Totals accumulates amounts per key and remembers the order in which keys
// were first seen. Ties in Max and Min resolve to the earliest key.
type Totals struct {
	order []string
	sums  map[string]decimal.Decimal
}

// NewTotals creates an empty Totals
func NewTotals() *Totals {
	return &Totals{sums: make(map[string]decimal.Decimal)}
}

// Add credits amount to key
func (t *Totals) Add(key string, amount float64) {
	cur, seen := t.sums[key]
	if !seen {
		t.order = append(t.order, key)
	}
	t.sums[key] = cur.Add(decimal.NewFromFloat(amount))
}

// Keys returns keys in first-seen order
func (t *Totals) Keys() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of distinct keys
func (t *Totals) Len() int {
	return len(t.order)
}

// Get returns the total for key
func (t *Totals) Get(key string) float64 {
	return t.sums[key].InexactFloat64()
}

// Total returns the grand total over all keys
func (t *Totals) Total() decimal.Decimal {
	total := decimal.Zero
	for _, k := range t.order {
		total = total.Add(t.sums[k])
	}
	return total
}

// Max returns the key with the largest total
func (t *Totals) Max() (string, float64, bool) {
	return t.pick(func(a, b decimal.Decimal) bool { return a.GreaterThan(b) })
}

// Min returns the key with the smallest total
func (t *Totals) Min() (string, float64, bool) {
	return t.pick(func(a, b decimal.Decimal) bool { return a.LessThan(b) })
}

func (t *Totals) pick(better func(a, b decimal.Decimal) bool) (string, float64, bool) {
	if len(t.order) == 0 {
		return "", 0, false
	}
	best := t.order[0]
	for _, k := range t.order[1:] {
		if better(t.sums[k], t.sums[best]) {
			best = k
		}
	}
	return best, t.sums[best].InexactFloat64(), true
}
