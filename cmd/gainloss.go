package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type gainLossCmd struct {
	from string
	to   string
}

func (*gainLossCmd) Name() string     { return "gainloss" }
func (*gainLossCmd) Synopsis() string { return "show the price change of a ticker between two dates" }
func (*gainLossCmd) Usage() string {
	return `gainloss -from <date> [-to <date>] <ticker>

  Shows the change in closing price between two trading days.
`
}

func (c *gainLossCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "start date")
	f.StringVar(&c.to, "to", "", "end date, defaults to today")
}

func (c *gainLossCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker")
		return subcommands.ExitUsageError
	}
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "a start date is required (-from)")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	from, err := folio.ParseDate(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := resolveDate(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	series, err := Quotes().Series(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	change, err := folio.GainLoss(series, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s moved %+.2f between %s and %s.\n", ticker, change, from, to)
	return subcommands.ExitSuccess
}
