package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/eodhd"
	"github.com/etnz/analytics/yahoo"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `Datum,Tijd,Product,ISIN,Aantal,Koers,,Lokale waarde,,Waarde,,Totaal,
05-01-2024,09:01,APPLE INC,US0378331005,10,"185,50",USD,"-1.855,00",USD,"-1.700,25",EUR,"-1.702,25",EUR
12-02-2024,10:15,APPLE INC,US0378331005,-3,"190,00",USD,"570,00",USD,"525,10",EUR,"523,10",EUR
`

const priceFile = `{"ticker":"^GSPC","history":{"2024-01-05":100,"2024-01-08":120,"2024-01-09":90,"2024-01-10":130}}
`

// setup runs the test in an empty directory with the export and the price file, a clean
// environment and default global flags. It returns the buffer receiving stdout.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"INPUT_FILE", "BENCHMARK_TICKER", "BASE_CURRENCY", "CHART_STYLE",
		"MARKET_PROVIDER", "EODHD_API_KEY", "PRICES_FILE", "START_DATE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	require.NoError(t, os.WriteFile("Transactions.csv", []byte(export), 0644))
	require.NoError(t, os.WriteFile("prices.jsonl", []byte(priceFile), 0644))

	saved := []string{*configFile, *inputFile, *benchmark, *currency, *provider, *pricesFile}
	savedVerbose, savedStdout := *verbose, stdout
	t.Cleanup(func() {
		*configFile, *inputFile, *benchmark, *currency, *provider, *pricesFile = saved[0], saved[1], saved[2], saved[3], saved[4], saved[5]
		*verbose, stdout = savedVerbose, savedStdout
	})
	*configFile, *benchmark, *currency, *pricesFile = "", "", "", ""
	*inputFile = "Transactions.csv"
	*provider = "file"
	*verbose = false

	var out bytes.Buffer
	stdout = &out
	return &out
}

// execute parses args for c and runs it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

func TestLoadConfig_Flags(t *testing.T) {
	setup(t)
	*currency = "usd"
	*benchmark = "IWDA.AS"
	*verbose = true

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Transactions.csv", cfg.InputFile)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, "IWDA.AS", cfg.BenchmarkTicker)
	assert.Equal(t, "file", cfg.MarketProvider)
	assert.Equal(t, "debug", cfg.LogLevel)

	*currency = "XYZ"
	_, err = loadConfig()
	assert.ErrorContains(t, err, "BASE_CURRENCY")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	setup(t)
	require.NoError(t, os.WriteFile("pfa.env", []byte("BENCHMARK_TICKER=IWDA.AS\n"), 0644))
	*configFile = "pfa.env"

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "IWDA.AS", cfg.BenchmarkTicker)
}

func TestNewProvider(t *testing.T) {
	setup(t)
	cfg, err := loadConfig()
	require.NoError(t, err)

	p, err := newProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, analytics.PriceFile("prices.jsonl"), p)

	cfg.MarketProvider, cfg.EODHDAPIKey = "eodhd", "demo"
	p, err = newProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &eodhd.Provider{}, p)

	cfg.MarketProvider = "yahoo"
	p, err = newProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &yahoo.Provider{}, p)

	cfg.MarketProvider = "bloomberg"
	_, err = newProvider(cfg)
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	out := setup(t)

	status := execute(t, &analyzeCmd{}, "-width", "20", "-height", "4")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "APPLE INC")
	assert.Contains(t, out.String(), "Benchmark ^GSPC")
	assert.Contains(t, out.String(), "Max Drawdown: -25.00%")
}

func TestAnalyze_FileNotFound(t *testing.T) {
	out := setup(t)
	*inputFile = "missing.csv"

	status := execute(t, &analyzeCmd{})
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out.String())
}

func TestHoldings(t *testing.T) {
	out := setup(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &holdingsCmd{}))
	assert.Contains(t, out.String(), "US0378331005")
	assert.Contains(t, out.String(), "179.15")

	assert.Equal(t, subcommands.ExitUsageError, execute(t, &holdingsCmd{}, "-locale", "xx"))
}

func TestNormalize(t *testing.T) {
	out := setup(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &normalizeCmd{}, "-locale", "nl"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Time,Product,ISIN,Quantity,Price,,Local Value,,Value,,Total,", lines[0])
	assert.Equal(t, "2024-02-12,10:15,APPLE INC,US0378331005,-3,190,USD,570,USD,525.1,EUR,523.1,EUR", lines[2])

	output := filepath.Join(t.TempDir(), "normalized.csv")
	require.Equal(t, subcommands.ExitSuccess, execute(t, &normalizeCmd{}, "-o", output))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
}

func TestBenchmark(t *testing.T) {
	out := setup(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &benchmarkCmd{}, "-since", "2024-01-08", "^GSPC"))
	assert.Contains(t, out.String(), "Benchmark ^GSPC")
	assert.Contains(t, out.String(), "2024-01-09 to 2024-01-10")

	assert.Equal(t, subcommands.ExitUsageError, execute(t, &benchmarkCmd{}, "-since", "soon"))
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &benchmarkCmd{}, "^GSPC", "IWDA.AS"))
	// a single price is not enough.
	assert.Equal(t, subcommands.ExitFailure, execute(t, &benchmarkCmd{}, "-since", "2024-01-10"))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &benchmarkCmd{}, "-since", "2024-01-01", "IWDA.AS"))
}

func TestReadPrices(t *testing.T) {
	setup(t)

	prices, err := readPrices("missing.jsonl")
	require.NoError(t, err)
	assert.Empty(t, prices)

	prices, err = readPrices("prices.jsonl")
	require.NoError(t, err)
	assert.Equal(t, 4, prices["^GSPC"].Len())
}

func TestTopic(t *testing.T) {
	out := setup(t)

	require.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}))
	assert.Contains(t, out.String(), "* dates:")
	assert.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{}, "ledger"))
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("pfa", flag.ContinueOnError), "pfa")
	Register(commander)

	tree := Completion()
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub, ok := tree.Sub[c.Name()]
		if !assert.True(t, ok, "command %q cannot be completed", c.Name()) {
			return
		}
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		f.VisitAll(func(fl *flag.Flag) {
			assert.Contains(t, sub.Flags, fl.Name, "flag -%s of %q cannot be completed", fl.Name, c.Name())
		})
	})
	flag.VisitAll(func(fl *flag.Flag) {
		if strings.HasPrefix(fl.Name, "test.") {
			return
		}
		assert.Contains(t, tree.Flags, fl.Name)
	})
}
