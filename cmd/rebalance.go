package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/skaur/folio"
	"github.com/skaur/folio/render"
)

type rebalanceCmd struct {
	portfolio string
	date      string
	weights   string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "rebalance a portfolio to target weights" }
func (*rebalanceCmd) Usage() string {
	return `rebalance -p <portfolio> -w <weights> [-d <date>]

  Adjusts holdings so each ticker's value share matches a target weight.
  The weights are comma-separated integer percentages summing to 100, one
  per ticker in the order shown by 'fcs distribution'. Shortfalls are
  bought at the rebalance date, excesses sold oldest lot first.

Usage Examples:
$ fcs rebalance -p retirement -w 60,40
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio to rebalance")
	f.StringVar(&c.date, "d", "", "rebalance date, defaults to today")
	f.StringVar(&c.weights, "w", "", "comma-separated target weights, e.g. 60,40")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.weights == "" {
		fmt.Fprintln(os.Stderr, "target weights are required (-w)")
		return subcommands.ExitUsageError
	}
	var weights []int
	for _, part := range strings.Split(c.weights, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid weight %q: %v\n", part, err)
			return subcommands.ExitUsageError
		}
		weights = append(weights, w)
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

	next, err := folio.Rebalance(p, on, weights, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := savePortfolio(next); status != subcommands.ExitSuccess {
		return status
	}

	dist, err := folio.Distribution(next, on, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	total, err := folio.Value(next, on, Quotes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(render.DistributionMarkdown(next.Name(), on, dist, total))
	return subcommands.ExitSuccess
}
