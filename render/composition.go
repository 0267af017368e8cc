package render

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/skaur/folio"
)

// CompositionMarkdown renders the lot-by-lot composition of a portfolio.
// Lot indexes are printed so they can be fed back to a targeted sell.
func CompositionMarkdown(p *folio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Composition of %s", p.Name()))

	if p.Size() == 0 {
		doc.PlainText("The portfolio holds no lots.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Lot", "Ticker", "Shares", "Purchased"},
		Rows:   [][]string{},
	}
	for i, lot := range p.Lots() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i),
			lot.Ticker,
			lot.Quantity.String(),
			lot.Purchased.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// HoldingsMarkdown renders the per-ticker aggregate shares on a date.
func HoldingsMarkdown(p *folio.Portfolio, on folio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Holdings of %s on %s", p.Name(), on))

	holdings := p.Distribution(on)
	if len(holdings) == 0 {
		doc.PlainText("No shares held on that date.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Shares"},
		Rows:      [][]string{},
	}
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{h.Ticker, h.Shares.String()})
	}
	doc.Table(table)
	return doc.String()
}
