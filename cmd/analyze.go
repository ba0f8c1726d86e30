package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	width, height int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze holdings and benchmark performance" }
func (*analyzeCmd) Usage() string {
	return `pfa analyze [-width <n>] [-height <n>]

  Loads the transaction export, reconstructs the current holdings, fetches the
  benchmark since the first transaction (or START_DATE) and reports its return,
  volatility and maximum drawdown.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", 72, "chart width in characters")
	f.IntVar(&c.height, "height", 12, "chart height in lines")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	provider, err := newProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating market data provider: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Analyzing %s against %s\n", cfg.InputFile, cfg.BenchmarkTicker)
	p := &analytics.Pipeline{Config: cfg, Provider: provider}
	a, err := p.Run(ctx)
	if errors.Is(err, analytics.ErrFileNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v. Set INPUT_FILE or use -input-file.\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running analysis: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnalysisMarkdown(a))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderer.Chart(a.Performance.Cumulative, renderer.Style(cfg.ChartStyle), c.width, c.height))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderer.MaxDrawdownLine(a.Performance))
	return subcommands.ExitSuccess
}
