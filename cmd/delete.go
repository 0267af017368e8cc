package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a saved portfolio" }
func (*deleteCmd) Usage() string {
	return `delete <name>

  Deletes a saved portfolio. This cannot be undone.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one portfolio name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if err := Store().Delete(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted portfolio %q.\n", name)
	return subcommands.ExitSuccess
}
