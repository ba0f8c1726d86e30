package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Holding is the net position held in an instrument.
type Holding struct {
	Product  string
	ISIN     string
	Quantity Quantity
	// Invested is the net amount paid for the position, in the account currency.
	Invested Money
}

type holdingKey struct{ product, isin string }

// NewHoldings reduces transactions to the current net positions.
//
// Rows without ISIN, Quantity or Product are ignored. Quantities are summed per (Product, ISIN)
// and only strictly positive positions are returned, sorted by Product then ISIN. Closed and short
// positions are both dropped.
//
// Sums are exact, so the result does not depend on the order of txs.
func NewHoldings(txs []Transaction, currency string) []Holding {
	qty := make(map[holdingKey]Quantity)
	paid := make(map[holdingKey]Money) // sum of Total, negative for a net buyer
	for _, tx := range txs {
		if !tx.IsTrade() || tx.Product == "" {
			continue
		}
		k := holdingKey{tx.Product, tx.ISIN}
		qty[k] = qty[k].Add(Q(tx.Quantity.Decimal))
		if _, ok := paid[k]; !ok {
			paid[k] = M(decimal.Zero, currency)
		}
		if tx.Total.Valid {
			paid[k] = paid[k].Add(M(tx.Total.Decimal, currency))
		}
	}

	var holdings []Holding
	for k, q := range qty {
		if !q.IsPositive() {
			continue
		}
		holdings = append(holdings, Holding{
			Product:  k.product,
			ISIN:     k.isin,
			Quantity: q,
			Invested: paid[k].Neg(),
		})
	}
	slices.SortFunc(holdings, func(a, b Holding) int {
		return cmp.Or(cmp.Compare(a.Product, b.Product), cmp.Compare(a.ISIN, b.ISIN))
	})
	return holdings
}
