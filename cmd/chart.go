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

type chartCmd struct {
	portfolio string
	days      int
	output    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a portfolio's value series as a PNG" }
func (*chartCmd) Usage() string {
	return `chart -p <portfolio> [-days <span>] [-o <file>]

  Renders the sampled historical value of the portfolio as a PNG line
  chart.

Usage Examples:
$ fcs chart -p retirement -days 365 -o retirement.png
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to chart")
	f.IntVar(&c.days, "days", 30, "span in days: 365, 180, 90, 30, 14 or 5")
	f.StringVar(&c.output, "o", "chart.png", "output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, status := loadPortfolio(c.portfolio)
	if status != subcommands.ExitSuccess {
		return status
	}

	series, err := folio.Performance(p, c.days, folio.Today(), Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	png, err := render.PerformanceChartPNG(p.Name(), series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s.\n", c.output)
	return subcommands.ExitSuccess
}
