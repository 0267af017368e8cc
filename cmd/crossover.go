package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type crossoverCmd struct {
	date   string
	window int
}

func (*crossoverCmd) Name() string     { return "crossover" }
func (*crossoverCmd) Synopsis() string { return "find moving-average crossovers for a ticker" }
func (*crossoverCmd) Usage() string {
	return `crossover [-d <date>] [-x <days>] <ticker>

  Finds the trading days in the x-day window ending at the date where
  the close crossed from below the x-day moving average to above it.
`
}

func (c *crossoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date, defaults to today")
	f.IntVar(&c.window, "x", 20, "window in trading days")
}

func (c *crossoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	on, err := resolveDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	series, err := Quotes().Series(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	days, err := folio.Crossovers(series, on, c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(days) == 0 {
		fmt.Printf("No %d-day crossover for %s in the window ending %s.\n", c.window, ticker, on)
		return subcommands.ExitSuccess
	}
	for _, day := range days {
		fmt.Printf("%s crossed above its %d-day moving average on %s.\n", ticker, c.window, day)
	}
	return subcommands.ExitSuccess
}
