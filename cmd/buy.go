package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type buyCmd struct {
	portfolio string
	date      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares" }
func (*buyCmd) Usage() string {
	return `buy -p <portfolio> [-d <date>] <ticker> <quantity>

  Records a purchase of shares. Buying the same ticker twice on the same
  date merges into a single lot. The ticker is validated against the
  reference directory.

Usage Examples:
$ fcs buy -p retirement GOOG 10
$ fcs buy -p retirement -d 2024-06-03 AAPL 2.5
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to buy into")
	f.StringVar(&c.date, "d", "", "purchase date, defaults to today")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected a ticker and a quantity")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	quantity, err := parseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	on, err := resolveDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}

	if !p.ContainsTicker(ticker) && !Directory().Known(ticker) {
		fmt.Fprintf(os.Stderr, "Error: %v: %q\n", folio.ErrUnknownTicker, ticker)
		return subcommands.ExitFailure
	}

	next, err := p.AddLot(ticker, folio.Q(quantity), on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := savePortfolio(next); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Bought %s shares of %s on %s.\n", folio.Q(quantity), ticker, on)
	return subcommands.ExitSuccess
}
