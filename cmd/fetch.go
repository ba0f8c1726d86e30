package cmd

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/config"
	"github.com/etnz/analytics/date"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type fetchCmd struct {
	since  string
	output string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download daily prices into the price file" }
func (*fetchCmd) Usage() string {
	return `pfa fetch [-since <date>] [-o <file>] [<symbol>...]

  Downloads the daily prices of the symbols (BENCHMARK_TICKER by default) and
  merges them into the price file (PRICES_FILE by default), to be used later
  with '-provider file'. The 'file' provider cannot fetch, yahoo is used instead.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", analytics.DefaultStart.String(), "first day to download. See 'pfa topic dates'.")
	f.StringVar(&c.output, "o", "", "price file to update, PRICES_FILE if empty")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	from, err := date.Parse(c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	output := cmp.Or(c.output, cfg.PricesFile)
	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = []string{cfg.BenchmarkTicker}
	}

	if cfg.MarketProvider == config.ProviderFile {
		cfg.MarketProvider = config.ProviderYahoo
	}
	provider, err := newProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating market data provider: %v\n", err)
		return subcommands.ExitFailure
	}

	prices, err := readPrices(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	for _, symbol := range symbols {
		h, err := provider.DailyPrices(ctx, symbol, from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", symbol, err)
			return subcommands.ExitFailure
		}
		first, _ := h.Earliest()
		log.Info().Str("symbol", symbol).Int("days", h.Len()).Stringer("first", first).Msg("prices fetched")
		prices.Merge(symbol, h)
	}

	var buf bytes.Buffer
	if err := analytics.ExportPrices(&buf, prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully updated %d symbols in %s\n", len(symbols), output)
	return subcommands.ExitSuccess
}

// readPrices reads a price file, a missing file is empty.
func readPrices(name string) (analytics.Prices, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return make(analytics.Prices), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return analytics.ImportPrices(f)
}
