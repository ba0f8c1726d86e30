// Package cmd implements the pfa command line application.
package cmd

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/analytics"
	"github.com/etnz/analytics/config"
	"github.com/etnz/analytics/eodhd"
	"github.com/etnz/analytics/logger"
	"github.com/etnz/analytics/yahoo"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&holdingsCmd{}, "analysis")
	c.Register(&benchmarkCmd{}, "analysis")

	c.Register(&normalizeCmd{}, "data")
	c.Register(&fetchCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config-file", "", "Path to a .env file, defaults to .env in the working directory")
	inputFile  = flag.String("input-file", "", "Transaction export to analyze, overrides INPUT_FILE")
	benchmark  = flag.String("benchmark", "", "Benchmark symbol, overrides BENCHMARK_TICKER")
	currency   = flag.String("currency", "", "Account currency, overrides BASE_CURRENCY")
	provider   = flag.String("provider", "", "Market data provider (yahoo, eodhd or file), overrides MARKET_PROVIDER")
	pricesFile = flag.String("prices-file", "", "Price file of the 'file' provider, overrides PRICES_FILE")
	verbose    = flag.Bool("v", false, "Log debug messages")
)

// stdout receives the results, logs go to stderr.
var stdout io.Writer = os.Stdout

// readConfig reads the configuration and applies the global flags.
func readConfig() (*config.Config, error) {
	cfg, err := config.Read(*configFile)
	if err != nil {
		return nil, err
	}
	cfg.InputFile = cmp.Or(*inputFile, cfg.InputFile)
	cfg.BenchmarkTicker = cmp.Or(*benchmark, cfg.BenchmarkTicker)
	cfg.BaseCurrency = strings.ToUpper(cmp.Or(*currency, cfg.BaseCurrency))
	cfg.MarketProvider = cmp.Or(*provider, cfg.MarketProvider)
	cfg.PricesFile = cmp.Or(*pricesFile, cfg.PricesFile)
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// loadConfig is readConfig, validated, and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: isatty.IsTerminal(os.Stderr.Fd()),
	}))
	return cfg, nil
}

// newProvider returns the market data provider selected by the configuration.
func newProvider(cfg *config.Config) (analytics.PriceProvider, error) {
	switch cfg.MarketProvider {
	case config.ProviderEODHD:
		return eodhd.New(cfg.EODHDAPIKey), nil
	case config.ProviderFile:
		return analytics.PriceFile(cfg.PricesFile), nil
	case config.ProviderYahoo:
		return yahoo.New()
	default:
		return nil, fmt.Errorf("unknown market provider %q", cfg.MarketProvider)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// renderMarkdown formats markdown for the terminal, md is returned unchanged if stdout is not one.
func renderMarkdown(md string) string {
	if !isTerminal(stdout) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Fprint(stdout, renderMarkdown(md)) }
