package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type newCmd struct{}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create an empty portfolio" }
func (*newCmd) Usage() string {
	return `new <name>

  Creates an empty portfolio and saves it in the data directory.
`
}

func (*newCmd) SetFlags(f *flag.FlagSet) {}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one portfolio name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	store := Store()
	if store.Exists(name) {
		fmt.Fprintf(os.Stderr, "portfolio %q already exists\n", name)
		return subcommands.ExitFailure
	}
	if status := savePortfolio(folio.NewPortfolio(name)); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created portfolio %q.\n", name)
	return subcommands.ExitSuccess
}
