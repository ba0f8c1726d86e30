package analytics

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an amount in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M is a convenient factory for Money.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to the currency's
// fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Neg() Money { return Money{value: m.value.Neg(), cur: m.cur} }

// Add returns m + n, n must be in the same currency.
func (m Money) Add(n Money) Money {
	if m.cur != n.cur {
		panic("currency mismatch " + m.cur + " != " + n.cur)
	}
	return Money{value: m.value.Add(n.value), cur: m.cur}
}
