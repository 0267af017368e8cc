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

type performanceCmd struct {
	portfolio string
	days      int
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "sample a portfolio's historical value" }
func (*performanceCmd) Usage() string {
	return `performance -p <portfolio> [-days <span>]

  Samples the value of the current holdings at a series of past dates.
  The span in days picks the sampling plan: 365, 180, 90, 30, 14 or 5.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to report on")
	f.IntVar(&c.days, "days", 30, "span in days: 365, 180, 90, 30, 14 or 5")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}

	series, err := folio.Performance(p, c.days, folio.Today(), Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(render.PerformanceMarkdown(p.Name(), c.days, series))
	return subcommands.ExitSuccess
}
