package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders the benchmark statistics.
func PerformanceMarkdown(symbol string, p *analytics.Performance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	var first, last date.Date
	if n := len(p.Cumulative); n > 0 {
		first, last = p.Cumulative[0].Date, p.Cumulative[n-1].Date
	}
	doc.H2(fmt.Sprintf("Benchmark %s", symbol))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Period"), md.Bold(fmt.Sprintf("%s to %s", first, last))},
		Rows: [][]string{
			{"Trading days", fmt.Sprint(len(p.Returns))},
			{"Total Return", analytics.Ratio(p.TotalReturn).SignedString()},
			{"Max Drawdown", analytics.Ratio(p.MaxDrawdown).String()},
			{"Volatility (annualized)", analytics.Ratio(p.Volatility).String()},
		},
	})
	return doc.String()
}

// MaxDrawdownLine is the one line summary printed after an analysis.
func MaxDrawdownLine(p *analytics.Performance) string {
	return fmt.Sprintf("Max Drawdown: %s", analytics.Ratio(p.MaxDrawdown))
}
