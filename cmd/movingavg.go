package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type movingAvgCmd struct {
	date   string
	window int
}

func (*movingAvgCmd) Name() string     { return "movingavg" }
func (*movingAvgCmd) Synopsis() string { return "show the moving average of a ticker" }
func (*movingAvgCmd) Usage() string {
	return `movingavg [-d <date>] [-x <days>] <ticker>

  Shows the x-day moving average of closing prices, the mean of the last
  x trading days ending on or before the date.
`
}

func (c *movingAvgCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date, defaults to today")
	f.IntVar(&c.window, "x", 20, "window in trading days")
}

func (c *movingAvgCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	avg, err := folio.MovingAverage(series, on, c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d-day moving average of %s on %s: %.2f\n", c.window, ticker, on, avg)
	return subcommands.ExitSuccess
}
