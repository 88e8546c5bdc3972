package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the data file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `vcc fmt

  Reads the whole data file, applies pending migrations (like renamed
  fields and unstamped season ids), and writes it back in the canonical
  indented form.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Open already loads and migrates; Format forces the canonical rewrite
	// even when nothing changed.
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.Format(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", *dataFile)
	return subcommands.ExitSuccess
}
