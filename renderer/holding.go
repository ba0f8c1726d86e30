package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// HoldingsMarkdown renders the current positions as a markdown table.
func HoldingsMarkdown(holdings []analytics.Holding, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No open position.")
		return doc.String()
	}

	total := analytics.M(decimal.Zero, currency)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Product", "ISIN", "Quantity", "Invested"},
	}
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{h.Product, h.ISIN, h.Quantity.String(), h.Invested.String()})
		total = total.Add(h.Invested)
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(fmt.Sprintf("%d positions", len(holdings))), "", md.Bold(total.String())})
	doc.Table(table)
	return doc.String()
}
