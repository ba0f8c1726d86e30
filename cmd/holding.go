package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	locale string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the positions currently held" }
func (*holdingsCmd) Usage() string {
	return `pfa holdings [-locale <code>]

  Displays the positions reconstructed from the transaction export: net quantity
  and invested amount per product. No market data is fetched.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.locale, "locale", "", "export language (en, nl, de, ...), all of them if empty")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	columns, err := columnMap(c.locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := &analytics.Pipeline{Config: cfg, Columns: columns}
	a, err := p.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	out := renderer.HoldingsMarkdown(a.Holdings, a.Currency)
	if q := renderer.QualityMarkdown(a.Quality); q != "" {
		out += "\n" + q
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}

// columnMap returns the column map of an export language, or of all of them if locale is empty.
func columnMap(locale string) (analytics.ColumnMap, error) {
	if locale == "" {
		return analytics.StandardColumns(), nil
	}
	m := analytics.LocaleColumns(locale)
	if m == nil {
		return nil, fmt.Errorf("unknown locale %q, want one of %v", locale, analytics.Locales())
	}
	return m, nil
}
