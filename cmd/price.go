package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type priceCmd struct {
	date string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the closing price of a ticker" }
func (*priceCmd) Usage() string {
	return `price [-d <date>] <ticker>

  Shows the closing price of a ticker on the date.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "quote date, defaults to today")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	price, err := Quotes().Close(ticker, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s closed at %.2f on %s.\n", ticker, price, on)
	return subcommands.ExitSuccess
}
