package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type inspectCmd struct{}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query the raw data file with a JSONPath expression" }
func (*inspectCmd) Usage() string {
	return `vcc inspect <jsonpath>

  Evaluates a JSONPath expression against the raw data file and prints the
  result as JSON. Handy for scripting and debugging.

Usage Examples:
# all player names of the data file
$ vcc inspect '$.players[*].name'

# revenues above 100
$ vcc inspect '$.revenues[?(@.amount > 100)]'
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: inspect takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(*dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading data file %q: %v\n", *dataFile, err)
		return subcommands.ExitFailure
	}

	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing data file %q: %v\n", *dataFile, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(f.Arg(0), jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
