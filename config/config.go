// Package config holds the run configuration of the analytics pipeline.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/analytics/date"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Chart styles.
const (
	StyleDarkGrid = "darkgrid"
	StylePlain    = "plain"
	StyleMono     = "mono"
)

// Market data providers.
const (
	ProviderYahoo = "yahoo"
	ProviderEODHD = "eodhd"
	ProviderFile  = "file"
)

var (
	chartStyles = []string{StyleDarkGrid, StylePlain, StyleMono}
	providers   = []string{ProviderYahoo, ProviderEODHD, ProviderFile}
)

// Config holds a single run configuration.
type Config struct {
	InputFile       string    // transaction export to analyze
	BenchmarkTicker string    // symbol of the benchmark series
	BaseCurrency    string    // account currency, ISO 4217
	ChartStyle      string    // cosmetic only
	MarketProvider  string    // source of the benchmark prices
	EODHDAPIKey     string    // required by the eodhd provider
	PricesFile      string    // required by the file provider
	StartDate       date.Date // zero means from the first transaction
	LogLevel        string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		InputFile:       "data/Transactions.csv",
		BenchmarkTicker: "^GSPC",
		BaseCurrency:    "EUR",
		ChartStyle:      StyleDarkGrid,
		MarketProvider:  ProviderYahoo,
		PricesFile:      "prices.jsonl",
		LogLevel:        "info",
	}
}

// Load reads and validates the configuration.
func Load(file string) (*Config, error) {
	cfg, err := Read(file)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads configuration from environment variables, without validating it.
//
// Variables are also read from 'file' if set, or from a .env file in the working directory if
// it exists. Variables set to a non-empty value in the environment take precedence. The process
// environment is not modified.
func Read(file string) (*Config, error) {
	var dotenv map[string]string
	if file == "" {
		dotenv, _ = godotenv.Read()
	} else {
		var err error
		if dotenv, err = godotenv.Read(file); err != nil {
			return nil, fmt.Errorf("cannot load config file %q: %w", file, err)
		}
	}
	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value := dotenv[key]; value != "" {
			return value
		}
		return defaultValue
	}

	def := Default()
	cfg := &Config{
		InputFile:       getEnv("INPUT_FILE", def.InputFile),
		BenchmarkTicker: getEnv("BENCHMARK_TICKER", def.BenchmarkTicker),
		BaseCurrency:    strings.ToUpper(getEnv("BASE_CURRENCY", def.BaseCurrency)),
		ChartStyle:      getEnv("CHART_STYLE", def.ChartStyle),
		MarketProvider:  getEnv("MARKET_PROVIDER", def.MarketProvider),
		EODHDAPIKey:     getEnv("EODHD_API_KEY", ""),
		PricesFile:      getEnv("PRICES_FILE", def.PricesFile),
		LogLevel:        getEnv("LOG_LEVEL", def.LogLevel),
	}
	if start := getEnv("START_DATE", ""); start != "" {
		d, err := date.Parse(start)
		if err != nil {
			return nil, fmt.Errorf("START_DATE: %w", err)
		}
		cfg.StartDate = d
	}
	return cfg, nil
}

// Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("INPUT_FILE is required")
	}
	if c.BenchmarkTicker == "" {
		return fmt.Errorf("BENCHMARK_TICKER is required")
	}
	if money.GetCurrency(c.BaseCurrency) == nil {
		return fmt.Errorf("BASE_CURRENCY %q is not a known currency code", c.BaseCurrency)
	}
	if !slices.Contains(chartStyles, c.ChartStyle) {
		return fmt.Errorf("CHART_STYLE %q must be one of %s", c.ChartStyle, strings.Join(chartStyles, ", "))
	}
	if !slices.Contains(providers, c.MarketProvider) {
		return fmt.Errorf("MARKET_PROVIDER %q must be one of %s", c.MarketProvider, strings.Join(providers, ", "))
	}
	if c.MarketProvider == ProviderEODHD && c.EODHDAPIKey == "" {
		return fmt.Errorf("EODHD_API_KEY is required by the %s provider", ProviderEODHD)
	}
	if c.MarketProvider == ProviderFile && c.PricesFile == "" {
		return fmt.Errorf("PRICES_FILE is required by the %s provider", ProviderFile)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Environ returns the configuration as environment variables, in the "KEY=value" form.
func (c *Config) Environ() []string {
	env := []string{
		"INPUT_FILE=" + c.InputFile,
		"BENCHMARK_TICKER=" + c.BenchmarkTicker,
		"BASE_CURRENCY=" + c.BaseCurrency,
		"CHART_STYLE=" + c.ChartStyle,
		"MARKET_PROVIDER=" + c.MarketProvider,
		"PRICES_FILE=" + c.PricesFile,
		"LOG_LEVEL=" + c.LogLevel,
	}
	if c.EODHDAPIKey != "" {
		env = append(env, "EODHD_API_KEY="+c.EODHDAPIKey)
	}
	if !c.StartDate.IsZero() {
		env = append(env, "START_DATE="+c.StartDate.String())
	}
	return env
}
