package analytics

import (
	"strings"

	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
)

// Transaction is a canonical brokerage event.
//
// Numeric fields are either true numbers or missing (Valid == false), the zero Date is a missing
// date and an empty ISIN marks a non security row (deposit, fee, currency exchange...).
type Transaction struct {
	Date       date.Date
	Time       string
	Product    string
	ISIN       string
	Quantity   decimal.NullDecimal // positive for a buy, negative for a sell
	Price      decimal.NullDecimal
	LocalValue decimal.NullDecimal // in the instrument currency
	Value      decimal.NullDecimal // in the account currency
	Total      decimal.NullDecimal // in the account currency
}

// IsTrade reports whether the transaction moves units of an instrument.
func (tx Transaction) IsTrade() bool {
	return tx.ISIN != "" && tx.Quantity.Valid
}

// Transactions converts a normalized table into canonical records, one per row.
//
// Absent columns leave the matching field missing.
func (t *Table) Transactions() []Transaction {
	text := func(name string) func(int) string {
		s := t.Series(name)
		if s == nil {
			return func(int) string { return "" }
		}
		return func(i int) string { return strings.TrimSpace(s.String(i)) }
	}
	number := func(name string) func(int) decimal.NullDecimal {
		s := t.Series(name)
		if s == nil {
			return func(int) decimal.NullDecimal { return decimal.NullDecimal{} }
		}
		return s.Number
	}
	day := func(int) date.Date { return date.Date{} }
	if s := t.Series(ColDate); s != nil {
		day = s.Date
	}

	tm, product, isin := text(ColTime), text(ColProduct), text(ColISIN)
	qty, price, local, value, total := number(ColQuantity), number(ColPrice), number(ColLocalValue), number(ColValue), number(ColTotal)

	txs := make([]Transaction, t.Len())
	for i := range txs {
		txs[i] = Transaction{
			Date:       day(i),
			Time:       tm(i),
			Product:    product(i),
			ISIN:       isin(i),
			Quantity:   qty(i),
			Price:      price(i),
			LocalValue: local(i),
			Value:      value(i),
			Total:      total(i),
		}
	}
	return txs
}

// Earliest returns the first known transaction date, or the zero date.
func Earliest(txs []Transaction) date.Date {
	var first date.Date
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		if first.IsZero() || tx.Date.Before(first) {
			first = tx.Date
		}
	}
	return first
}
