package analytics

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
)

// Quality reports the cells that could not be converted during normalization.
//
// Unconvertible cells never abort a load: they become missing values and are counted here.
type Quality struct {
	Rows         int            // number of rows in the table
	Coerced      map[string]int // per numeric column, non-empty cells that became missing
	InvalidDates int            // non-empty dates that could not be parsed
	InvalidISINs int            // non-empty ISINs that are not valid ISO 6166 codes (rows are kept)
}

// Total returns the number of cells that were turned into missing values.
func (q *Quality) Total() int {
	n := q.InvalidDates
	for _, c := range q.Coerced {
		n += c
	}
	return n
}

// Clean reports whether nothing was coerced and every ISIN is valid.
func (q *Quality) Clean() bool { return q.Total() == 0 && q.InvalidISINs == 0 }

// String summarizes the report in a single line.
func (q *Quality) String() string {
	if q.Clean() {
		return fmt.Sprintf("%d rows, no coercion", q.Rows)
	}
	var parts []string
	for _, col := range slices.Sorted(maps.Keys(q.Coerced)) {
		if n := q.Coerced[col]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", col, n))
		}
	}
	if q.InvalidDates > 0 {
		parts = append(parts, fmt.Sprintf("%s: %d", ColDate, q.InvalidDates))
	}
	if q.InvalidISINs > 0 {
		parts = append(parts, fmt.Sprintf("invalid ISIN: %d", q.InvalidISINs))
	}
	return fmt.Sprintf("%d rows, missing values after coercion (%s)", q.Rows, strings.Join(parts, ", "))
}

// Normalize relabels the columns of raw into canonical names and converts locale formatted cells.
//
// Columns absent from m are kept unchanged. Canonical numeric columns stored as text are
// converted by removing the thousands separator '.' and turning the decimal ',' into '.';
// a Date column stored as text is parsed day first. Cells that still fail to parse become
// missing values. Already converted columns are left untouched, so that normalizing twice is
// the same as normalizing once.
//
// raw is not modified.
func (m ColumnMap) Normalize(raw *Table) (*Table, *Quality) {
	q := &Quality{Rows: raw.Len(), Coerced: make(map[string]int)}

	t := &Table{rows: raw.rows}
	for _, s := range raw.series {
		s = s.rename(m.Canonical(s.Name))
		switch {
		case slices.Contains(NumericColumns, s.Name) && s.Kind == Text:
			s = localeNumbers(s, q)
		case s.Name == ColDate && s.Kind == Text:
			s = dayFirstDates(s, q)
		}
		t.series = append(t.series, s)
	}

	if isin := t.Series(ColISIN); isin != nil {
		for i := range isin.Len() {
			if v := strings.TrimSpace(isin.String(i)); v != "" && ValidateISIN(v) != nil {
				q.InvalidISINs++
			}
		}
	}
	return t, q
}

// localeNumbers converts a text series of European formatted numbers.
func localeNumbers(s *Series, q *Quality) *Series {
	numbers := make([]decimal.NullDecimal, len(s.Text))
	for i, cell := range s.Text {
		n, ok := ParseLocaleNumber(cell)
		if !ok && strings.TrimSpace(cell) != "" {
			q.Coerced[s.Name]++
		}
		numbers[i] = n
	}
	return &Series{Name: s.Name, Kind: Number, Numbers: numbers}
}

// dayFirstDates converts a text series of day first dates.
func dayFirstDates(s *Series, q *Quality) *Series {
	dates := make([]date.Date, len(s.Text))
	for i, cell := range s.Text {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		d, err := date.ParseDayFirst(cell)
		if err != nil {
			q.InvalidDates++
			continue
		}
		dates[i] = d
	}
	return &Series{Name: s.Name, Kind: Dates, Dates: dates}
}

// ParseLocaleNumber parses a number formatted with '.' as thousands separator and ',' as
// decimal separator, like "1.234,56".
//
// Every '.' is dropped before the ',' is turned into the decimal point: "12.5" reads as 125.
// It returns a missing value and false when the cell is not a number.
func ParseLocaleNumber(s string) (decimal.NullDecimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	n := parsePlain(s)
	return n, n.Valid
}
