// Package aggregator derives read-only financial projections from periods and
// their entries. Every function is pure: no I/O, no logging, no shared state.
package aggregator

import "github.com/shopspring/decimal"

// cents is the precision of every money figure produced here.
const cents = 2

var hundred = decimal.NewFromInt(100)

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(cents)
}

// sumMoney adds values that are already rounded to cents.
func sumMoney(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// margin returns net / gross * 100 rounded to cents, or zero when gross is zero.
func margin(net, gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return net.Mul(hundred).DivRound(gross, cents)
}
