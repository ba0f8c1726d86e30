package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installExtension writes an executable shell script named pfa-<name> in a directory added to PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pfa-"+name), []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	out := setup(t)
	installExtension(t, "hello", `echo "INPUT_FILE=$INPUT_FILE"
echo "BASE_CURRENCY=$BASE_CURRENCY"
echo "MARKET_PROVIDER=$MARKET_PROVIDER"
echo "args=$*"
`)
	*currency = "usd"

	found, code := RunExtension("hello", []string{"a", "b"})
	require.True(t, found)
	assert.Equal(t, 0, code)
	for _, line := range []string{"INPUT_FILE=Transactions.csv", "BASE_CURRENCY=USD", "MARKET_PROVIDER=file", "args=a b"} {
		assert.Contains(t, strings.Split(out.String(), "\n"), line)
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	setup(t)
	installExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	assert.True(t, found)
	assert.Equal(t, 3, code)

	found, _ = RunExtension("no-such-extension", nil)
	assert.False(t, found)
}

func TestIsRegistered(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("pfa", flag.ContinueOnError), "pfa")
	Register(commander)
	assert.True(t, IsRegistered(commander, "analyze"))
	assert.False(t, IsRegistered(commander, "hello"))
}
