package analytics

import (
	"context"
	"fmt"
	"os"

	"github.com/etnz/analytics/date"
)

// PriceProvider retrieves daily adjusted closing prices.
type PriceProvider interface {
	// DailyPrices returns the prices of symbol since 'from' included.
	DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error)
}

// PriceFile is an offline PriceProvider reading prices from a file in the import/export format.
type PriceFile string

// DailyPrices implements PriceProvider.
func (f PriceFile) DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error) {
	r, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	prices, err := ImportPrices(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read price file %q: %w", f, err)
	}
	h, ok := prices[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q in price file %q", symbol, f)
	}
	return h.Since(from), nil
}
