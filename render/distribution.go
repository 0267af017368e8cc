package render

import (
	"fmt"
	"strings"

	"github.com/skaur/folio"
)

// DistributionMarkdown renders the per-ticker value distribution of a
// portfolio on a date, with the total as a footer row.
func DistributionMarkdown(name string, on folio.Date, dist []folio.HoldingValue, total folio.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Value of %s on %s\n\n", name, on)
	fmt.Fprintln(&b, "| Ticker | Value | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, hv := range dist {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", hv.Ticker, hv.Value, hv.Percent)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | |\n", total)
	return b.String()
}

// ValueMarkdown renders the one-line total value of a portfolio on a date.
func ValueMarkdown(name string, on folio.Date, total folio.Money) string {
	return fmt.Sprintf("On %s, **%s** is worth **%s**.\n", on, name, total)
}
