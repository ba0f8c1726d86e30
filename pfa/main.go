// Command pfa analyzes a brokerage transaction export against a market benchmark.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/analytics/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	cmd.Completion().Complete("pfa")

	flag.Parse()

	// unknown commands may be provided by a pfa-<name> executable.
	if name := flag.Arg(0); name != "" && !cmd.IsRegistered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
