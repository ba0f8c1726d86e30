package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/renderer"
	"github.com/google/subcommands"
)

type benchmarkCmd struct {
	since         string
	width, height int
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "display the performance of a symbol" }
func (*benchmarkCmd) Usage() string {
	return `pfa benchmark [-since <date>] [<symbol>]

  Fetches the daily prices of a symbol (BENCHMARK_TICKER by default) and reports
  its total return, annualized volatility and maximum drawdown. No transaction
  is read.
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "first day, START_DATE or one year ago if empty. See 'pfa topic dates'.")
	f.IntVar(&c.width, "width", 72, "chart width in characters")
	f.IntVar(&c.height, "height", 12, "chart height in lines")
}

func (c *benchmarkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one symbol is expected")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	symbol := cmp.Or(f.Arg(0), cfg.BenchmarkTicker)

	from := cmp.Or(cfg.StartDate, date.Today().Add(-365))
	if c.since != "" {
		if from, err = date.Parse(c.since); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	provider, err := newProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating market data provider: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := provider.DailyPrices(ctx, symbol, from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	perf, err := analytics.NewPerformance(prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing performance of %s since %s: %v\n", symbol, from, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(symbol, perf))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderer.Chart(perf.Cumulative, renderer.Style(cfg.ChartStyle), c.width, c.height))
	return subcommands.ExitSuccess
}
