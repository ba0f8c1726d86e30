package analytics

import "github.com/shopspring/decimal"

// Quantity is an exact number of units of an instrument.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for quantities.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) String() string          { return q.value.String() }
