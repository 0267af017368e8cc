package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
	"github.com/skaur/folio/render"
)

type distributionCmd struct {
	portfolio string
	date      string
}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "show the value distribution of a portfolio" }
func (*distributionCmd) Usage() string {
	return `distribution -p <portfolio> [-d <date>]

  Breaks the portfolio's value down per ticker, with each line showing the
  ticker's value and its percentage share of the total.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to show")
	f.StringVar(&c.date, "d", "", "valuation date, defaults to today")
}

func (c *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}
	on, err := resolveDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	dist, err := folio.Distribution(p, on, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	total, err := folio.Value(p, on, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(render.DistributionMarkdown(p.Name(), on, dist, total))
	return subcommands.ExitSuccess
}
