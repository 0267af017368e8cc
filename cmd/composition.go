package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/skaur/folio/render"
)

type compositionCmd struct {
	portfolio string
	date      string
	aggregate bool
}

func (*compositionCmd) Name() string     { return "composition" }
func (*compositionCmd) Synopsis() string { return "show the lots of a portfolio" }
func (*compositionCmd) Usage() string {
	return `composition -p <portfolio> [-d <date>] [-by-ticker]

  Shows the portfolio lot by lot, with the lot indexes used by a targeted
  sell. With -by-ticker the lots are aggregated into per-ticker share
  counts as of the given date.
`
}

func (c *compositionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to show")
	f.StringVar(&c.date, "d", "", "date for the aggregation, defaults to today")
	f.BoolVar(&c.aggregate, "by-ticker", false, "aggregate lots into per-ticker share counts")
}

func (c *compositionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}
	on, err := resolveDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if c.aggregate {
		printMarkdown(render.HoldingsMarkdown(p, on))
	} else {
		printMarkdown(render.CompositionMarkdown(p))
	}
	return subcommands.ExitSuccess
}
