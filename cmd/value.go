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

type valueCmd struct {
	portfolio string
	date      string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the total value of a portfolio" }
func (*valueCmd) Usage() string {
	return `value -p <portfolio> [-d <date>]

  Prices every holding at its closing price on the date and sums the
  results. The date must be a trading day.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to value")
	f.StringVar(&c.date, "d", "", "valuation date, defaults to today")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}
	on, err := resolveDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	total, err := folio.Value(p, on, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(render.ValueMarkdown(p.Name(), on, total))
	return subcommands.ExitSuccess
}
