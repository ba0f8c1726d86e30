package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/analytics"
	md "github.com/nao1215/markdown"
)

// QualityMarkdown renders the cells that were turned into missing values during the load.
//
// It returns an empty string for a clean load.
func QualityMarkdown(q *analytics.Quality) string {
	if q == nil || q.Clean() {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Data Quality")
	doc.PlainText(fmt.Sprintf("%d rows loaded, some cells could not be converted and are missing.", q.Rows))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Column", "Missing"},
	}
	for _, col := range slices.Sorted(maps.Keys(q.Coerced)) {
		if n := q.Coerced[col]; n > 0 {
			table.Rows = append(table.Rows, []string{col, fmt.Sprint(n)})
		}
	}
	if q.InvalidDates > 0 {
		table.Rows = append(table.Rows, []string{analytics.ColDate, fmt.Sprint(q.InvalidDates)})
	}
	if q.InvalidISINs > 0 {
		table.Rows = append(table.Rows, []string{analytics.ColISIN + " (invalid, kept)", fmt.Sprint(q.InvalidISINs)})
	}
	doc.Table(table)
	return doc.String()
}
