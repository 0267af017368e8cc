package render

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/skaur/folio"
)

// PerformanceMarkdown renders a sampled value series as a table, latest
// sample first, each row carrying the change against the previous sample.
func PerformanceMarkdown(name string, spanDays int, series *folio.History[folio.Money]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Performance of %s over %d days", name, spanDays))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Value", "Change"},
		Rows:      [][]string{},
	}
	var rows [][]string
	prev := folio.Money{}
	first := true
	for on, value := range series.Values() {
		change := ""
		if !first {
			change = value.Sub(prev).String()
		}
		rows = append(rows, []string{on.String(), value.String(), change})
		prev, first = value, false
	}
	// newest on top
	for i := len(rows) - 1; i >= 0; i-- {
		table.Rows = append(table.Rows, rows[i])
	}
	doc.Table(table)
	return doc.String()
}
