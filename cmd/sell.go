package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

type sellCmd struct {
	portfolio string
	date      string
	index     int
	all       bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of shares" }
func (*sellCmd) Usage() string {
	return `sell -p <portfolio> [-d <date>] [-i <lot>] [-all] <ticker> [<quantity>]

  Records a sale of shares, drawing from the ticker's lots oldest purchase
  first. With -i the sale targets one specific lot (indexes are shown by
  'fcs composition'). With -all the targeted lot is removed entirely and
  the quantity may be omitted.

Usage Examples:
$ fcs sell -p retirement GOOG 10
$ fcs sell -p retirement -i 2 GOOG 5
$ fcs sell -p retirement -i 2 -all GOOG
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to sell from")
	f.StringVar(&c.date, "d", "", "sale date, defaults to today")
	f.IntVar(&c.index, "i", -1, "lot index to sell from, -1 targets the ticker's first lot")
	f.BoolVar(&c.all, "all", false, "remove the whole lot")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "expected a ticker and optionally a quantity")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	var quantity float64
	if f.NArg() == 2 {
		var err error
		quantity, err = parseQuantity(f.Arg(1))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	} else if !c.all {
		fmt.Fprintln(os.Stderr, "a quantity is required unless -all is set")
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

	var next *folio.Portfolio
	if c.index >= 0 || c.all {
		// a targeted sale touches exactly one lot
		next, err = p.RemoveLot(ticker, folio.Q(quantity), c.index, c.all, on)
	} else {
		next, err = p.Sell(ticker, folio.Q(quantity), on)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := savePortfolio(next); status != subcommands.ExitSuccess {
		return status
	}
	if c.all {
		fmt.Printf("Removed lot of %s on %s.\n", ticker, on)
	} else {
		fmt.Printf("Sold %s shares of %s on %s.\n", folio.Q(quantity), ticker, on)
	}
	return subcommands.ExitSuccess
}
