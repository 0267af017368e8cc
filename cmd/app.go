// Package cmd implements the CLI application to track stock portfolios.
package cmd

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/skaur/folio"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "portfolios")
	c.Register(&listCmd{}, "portfolios")
	c.Register(&deleteCmd{}, "portfolios")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&rebalanceCmd{}, "transactions")

	c.Register(&compositionCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")
	c.Register(&distributionCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&priceCmd{}, "market")
	c.Register(&gainLossCmd{}, "market")
	c.Register(&movingAvgCmd{}, "market")
	c.Register(&crossoverCmd{}, "market")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDirFlag = flag.String("data-dir", "", "Folder holding the saved portfolios. Overrides the config file, defaults to ~/.folio")
var screenerFlag = flag.String("screener", "", "Path to an exchange screener CSV used to validate tickers. Overrides the config file.")

var quotes *folio.AlphaVantage

// Store returns the file store for saved portfolios.
func Store() *folio.FileStore {
	return folio.NewFileStore(dataDir())
}

// Quotes returns the app quote service, created on first use.
func Quotes() *folio.AlphaVantage {
	if quotes == nil {
		quotes = folio.NewAlphaVantage(appConfig().APIKey)
	}
	return quotes
}

// Directory returns the ticker directory: the screener list when configured,
// always backed by the quote provider's symbol search.
func Directory() folio.TickerDirectory {
	dirs := []folio.TickerDirectory{}
	if path := screenerPath(); path != "" {
		list, err := folio.LoadScreener(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring screener file: %v\n", err)
		} else {
			dirs = append(dirs, list)
		}
	}
	dirs = append(dirs, Quotes())
	return folio.Directories(dirs...)
}

// loadPortfolio reads one saved portfolio, reporting errors to stderr.
func loadPortfolio(name string) (*folio.Portfolio, subcommands.ExitStatus) {
	if name == "" {
		fmt.Fprintln(os.Stderr, "a portfolio name is required (-p)")
		return nil, subcommands.ExitUsageError
	}
	p, err := Store().Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio %q: %v\n", name, err)
		return nil, subcommands.ExitFailure
	}
	return p, subcommands.ExitSuccess
}

// savePortfolio persists a mutated portfolio, reporting errors to stderr.
func savePortfolio(p *folio.Portfolio) subcommands.ExitStatus {
	if err := Store().Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio %q: %v\n", p.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseQuantity parses a share quantity argument. ParseFloat also accepts
// "NaN" and "Inf", which are meaningless as share counts and rejected by the
// decimal types.
func parseQuantity(s string) (float64, error) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %v", s, err)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("invalid quantity %q: not a finite number", s)
	}
	return q, nil
}

// resolveDate parses a -d flag value, empty means today.
func resolveDate(s string) (folio.Date, error) {
	if s == "" {
		return folio.Today(), nil
	}
	return folio.ParseDate(s)
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
