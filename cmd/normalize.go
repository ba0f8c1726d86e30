package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/analytics"
	"github.com/google/subcommands"
)

type normalizeCmd struct {
	output string
	locale string
}

func (*normalizeCmd) Name() string     { return "normalize" }
func (*normalizeCmd) Synopsis() string { return "write the export with canonical columns, numbers and dates" }
func (*normalizeCmd) Usage() string {
	return `pfa normalize [-o <file>] [-locale <code>]

  Reads the transaction export, renames its columns to the canonical names and
  converts locale formatted numbers and day first dates. The result is written
  as CSV to the standard output or to the -o file.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, standard output if empty")
	f.StringVar(&c.locale, "locale", "", "export language (en, nl, de, ...), all of them if empty")
}

func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	t, q, err := analytics.Load(cfg.InputFile, columns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := analytics.EncodeCSV(w, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Successfully wrote %d rows to %s (%s)\n", t.Len(), c.output, q)
	}
	return subcommands.ExitSuccess
}
