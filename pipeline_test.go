package analytics

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/analytics/config"
	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves a fixed price series and records the requests.
type fakeProvider struct {
	prices *date.History[float64]
	err    error
	calls  []string
	from   date.Date
}

func (f *fakeProvider) DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error) {
	f.calls = append(f.calls, symbol)
	f.from = from
	return f.prices, f.err
}

func testConfig(input string) *config.Config {
	cfg := config.Default()
	cfg.InputFile = input
	return cfg
}

func TestPipeline_Run(t *testing.T) {
	captureLog(t)
	provider := &fakeProvider{prices: history(100, 120, 90, 130)}
	p := &Pipeline{Config: testConfig(writeFile(t, "Account.csv", dutchExport)), Provider: provider}

	a, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, a.Transactions, 4)
	assert.Equal(t, []string{"APPLE INC US0378331005 7", "VANGUARD FTSE ALL-WORLD IE00B3RBWM25 5"}, snapshot(a.Holdings))
	assert.Equal(t, M(decimal.RequireFromString("1179.15"), "EUR").String(), a.Holdings[0].Invested.String())

	assert.Equal(t, []string{"^GSPC"}, provider.calls)
	assert.Equal(t, date.New(2024, 1, 5), provider.from, "benchmark starts with the first transaction")
	assert.Equal(t, date.New(2024, 1, 5), a.Start)
	assert.InDelta(t, -0.25, a.Performance.MaxDrawdown, 1e-9)
}

func TestPipeline_StartDate(t *testing.T) {
	captureLog(t)
	provider := &fakeProvider{prices: history(1, 2)}

	cfg := testConfig(writeFile(t, "Account.csv", dutchExport))
	cfg.StartDate = date.New(2020, 6, 1)
	_, err := (&Pipeline{Config: cfg, Provider: provider}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, date.New(2020, 6, 1), provider.from)

	// no dated transaction at all
	cfg = testConfig(writeFile(t, "Empty.csv", "Datum,Product,ISIN,Aantal\n"))
	_, err = (&Pipeline{Config: cfg, Provider: provider}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultStart, provider.from)
}

func TestPipeline_FileNotFound(t *testing.T) {
	captureLog(t)
	provider := &fakeProvider{prices: history(1, 2)}
	p := &Pipeline{Config: testConfig(filepath.Join(t.TempDir(), "missing.csv")), Provider: provider}

	a, err := p.Run(context.Background())
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Nil(t, a)
	assert.Empty(t, provider.calls, "no price is fetched once loading failed")
}

func TestPipeline_ProviderErrors(t *testing.T) {
	captureLog(t)
	input := writeFile(t, "Account.csv", dutchExport)

	unreachable := errors.New("connection refused")
	_, err := (&Pipeline{Config: testConfig(input), Provider: &fakeProvider{err: unreachable}}).Run(context.Background())
	assert.ErrorIs(t, err, unreachable)

	_, err = (&Pipeline{Config: testConfig(input), Provider: &fakeProvider{prices: history(100)}}).Run(context.Background())
	assert.ErrorIs(t, err, ErrInsufficientPrices)
}
