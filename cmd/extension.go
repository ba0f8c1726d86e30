package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/subcommands"
)

// IsRegistered reports whether name is a command of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external pfa-<subcommand> binary.
//
// The extension receives the effective configuration, global flags applied, as environment
// variables. It returns (true, exitCode) if an extension was found and executed, and (false, 0)
// if there is no such extension.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "pfa-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cfg, err := readConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return true, int(subcommands.ExitFailure)
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), cfg.Environ()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, int(subcommands.ExitFailure)
	}
	return true, 0
}
