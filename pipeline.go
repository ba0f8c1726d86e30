package analytics

import (
	"context"
	"fmt"

	"github.com/etnz/analytics/config"
	"github.com/etnz/analytics/date"
	"github.com/rs/zerolog/log"
)

// DefaultStart is the benchmark start date when neither the configuration nor the transactions
// provide one.
var DefaultStart = date.New(2023, 1, 1)

// Analysis is the outcome of a single pipeline run.
type Analysis struct {
	Transactions []Transaction
	Quality      *Quality
	Holdings     []Holding
	Currency     string

	Benchmark   string
	Start       date.Date
	Prices      *date.History[float64]
	Performance *Performance
}

// Pipeline runs the analysis stages in order: load, holdings, benchmark fetch and performance.
type Pipeline struct {
	Config   *config.Config
	Provider PriceProvider
	Columns  ColumnMap // defaults to StandardColumns
}

// Run executes every stage, each one consuming the previous one's result.
//
// The first failing stage stops the run: in particular ErrFileNotFound is returned before any
// price is fetched.
func (p *Pipeline) Run(ctx context.Context) (*Analysis, error) {
	a, err := p.Load()
	if err != nil {
		return nil, err
	}

	a.Start = p.Config.StartDate
	if a.Start.IsZero() {
		a.Start = Earliest(a.Transactions)
	}
	if a.Start.IsZero() {
		a.Start = DefaultStart
	}

	a.Benchmark = p.Config.BenchmarkTicker
	log.Info().Str("symbol", a.Benchmark).Stringer("from", a.Start).Msg("fetching benchmark")
	a.Prices, err = p.Provider.DailyPrices(ctx, a.Benchmark, a.Start)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch benchmark %q: %w", a.Benchmark, err)
	}

	a.Performance, err = NewPerformance(a.Prices)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q since %s: %w", a.Benchmark, a.Start, err)
	}
	return a, nil
}

// Load runs the stages that do not need market data: load and holdings.
func (p *Pipeline) Load() (*Analysis, error) {
	columns := p.Columns
	if columns == nil {
		columns = StandardColumns()
	}
	t, q, err := Load(p.Config.InputFile, columns)
	if err != nil {
		return nil, err
	}
	a := &Analysis{
		Transactions: t.Transactions(),
		Quality:      q,
		Currency:     p.Config.BaseCurrency,
	}
	a.Holdings = NewHoldings(a.Transactions, a.Currency)
	log.Info().Int("transactions", len(a.Transactions)).Int("positions", len(a.Holdings)).Msg("holdings reconstructed")
	return a, nil
}
