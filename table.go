package analytics

import (
	"strings"

	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
)

// Kind is the type of values held by a Series.
type Kind int

const (
	Text   Kind = iota // raw strings, as read from the file
	Number             // decimal numbers, possibly missing
	Dates              // calendar days, the zero Date being missing
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Number:
		return "number"
	case Dates:
		return "date"
	default:
		return "unknown"
	}
}

// Series is a single named column of a Table.
//
// Only the slice matching Kind is populated.
type Series struct {
	Name    string
	Kind    Kind
	Text    []string
	Numbers []decimal.NullDecimal
	Dates   []date.Date
}

// Len returns the number of cells in the series.
func (s *Series) Len() int {
	switch s.Kind {
	case Number:
		return len(s.Numbers)
	case Dates:
		return len(s.Dates)
	default:
		return len(s.Text)
	}
}

// String returns the cell i formatted as text, missing values are empty strings.
func (s *Series) String(i int) string {
	switch s.Kind {
	case Number:
		if !s.Numbers[i].Valid {
			return ""
		}
		return s.Numbers[i].Decimal.String()
	case Dates:
		return s.Dates[i].String()
	default:
		return s.Text[i]
	}
}

// Number returns cell i as a number.
//
// Text cells are parsed as plain numbers (dot as decimal separator).
func (s *Series) Number(i int) decimal.NullDecimal {
	switch s.Kind {
	case Number:
		return s.Numbers[i]
	case Text:
		return parsePlain(s.Text[i])
	default:
		return decimal.NullDecimal{}
	}
}

// Date returns cell i as a date, the zero date if missing.
func (s *Series) Date(i int) date.Date {
	switch s.Kind {
	case Dates:
		return s.Dates[i]
	case Text:
		d, _ := date.ParseDayFirst(s.Text[i])
		return d
	default:
		return date.Date{}
	}
}

// rename returns a shallow copy of s with a different name.
func (s *Series) rename(name string) *Series {
	c := *s
	c.Name = name
	return &c
}

// Table is a column oriented table of transactions.
//
// Column names are not required to be unique, the first one wins on lookups.
type Table struct {
	series []*Series
	rows   int
}

// NewTable builds a table from a header and text records.
//
// Each column is typed the way a CSV reader would: a column whose non-empty cells are all plain
// numbers is a Number series, any other column is Text.
// Records shorter than the header are padded with empty cells, extra cells are ignored.
func NewTable(header []string, records [][]string) *Table {
	t := &Table{rows: len(records)}
	for j, name := range header {
		cells := make([]string, len(records))
		for i, rec := range records {
			if j < len(rec) {
				cells[i] = rec[j]
			}
		}
		t.series = append(t.series, inferSeries(name, cells))
	}
	return t
}

// NewTableFromSeries builds a table from already typed series, which must have the same length.
func NewTableFromSeries(series ...*Series) *Table {
	t := &Table{series: series}
	if len(series) > 0 {
		t.rows = series[0].Len()
	}
	return t
}

// inferSeries types a column of raw cells.
func inferSeries(name string, cells []string) *Series {
	numbers := make([]decimal.NullDecimal, len(cells))
	for i, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		n := parsePlain(cell)
		if !n.Valid {
			return &Series{Name: name, Kind: Text, Text: cells}
		}
		numbers[i] = n
	}
	return &Series{Name: name, Kind: Number, Numbers: numbers}
}

// parsePlain parses a number written with a dot as decimal separator and no grouping.
func parsePlain(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, ", ") {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names, in file order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.series))
	for i, s := range t.series {
		names[i] = s.Name
	}
	return names
}

// Series returns the first column named 'name' or nil.
func (t *Table) Series(name string) *Series {
	for _, s := range t.series {
		if s.Name == name {
			return s
		}
	}
	return nil
}
