package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders a full pipeline run: holdings, data quality and benchmark.
func AnalysisMarkdown(a *analytics.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Portfolio Analysis")
	doc.PlainText(fmt.Sprintf("%d transactions, %d open positions.", len(a.Transactions), len(a.Holdings)))

	out := doc.String() + "\n" + HoldingsMarkdown(a.Holdings, a.Currency)
	if q := QualityMarkdown(a.Quality); q != "" {
		out += "\n" + q
	}
	if a.Performance != nil {
		out += "\n" + PerformanceMarkdown(a.Benchmark, a.Performance)
	}
	return out
}
