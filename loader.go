package analytics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrFileNotFound is returned when the transaction file path does not resolve to a regular file.
	ErrFileNotFound = errors.New("transaction file not found")
	// ErrMalformed is returned when the transaction file is not a well formed CSV.
	ErrMalformed = errors.New("malformed transaction file")
)

// Load reads a transaction export from path, and normalizes it with m.
//
// A missing path is reported as ErrFileNotFound, and logged. Any other error is returned as is.
// Cells that could not be converted are counted in the returned Quality, and summarized in a
// single warning.
func Load(path string, m ColumnMap) (*Table, *Quality, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		log.Error().Str("path", path).Msg("transaction file not found")
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	raw, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	t, q := m.Normalize(raw)
	if !q.Clean() {
		log.Warn().Str("path", path).Int("missing", q.Total()).Int("invalid_isin", q.InvalidISINs).Msg(q.String())
	}
	log.Debug().Str("path", path).Int("rows", t.Len()).Strs("columns", t.Columns()).Msg("transactions loaded")
	return t, q, nil
}

// Decode reads a comma separated table whose first record is the header.
//
// An optional UTF-8 byte order mark is skipped. Records shorter than the header are padded with
// empty cells; longer records, invalid UTF-8 and CSV syntax errors are reported as ErrMalformed.
func Decode(r io.Reader) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := checkUTF8(header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: line %d: %d fields, header has %d", ErrMalformed, line, len(rec), len(header))
		}
		if err := checkUTF8(rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		records = append(records, rec)
	}
	return NewTable(header, records), nil
}

func checkUTF8(fields []string) error {
	for i, f := range fields {
		if !utf8.ValidString(f) {
			return fmt.Errorf("field %d is not valid UTF-8", i+1)
		}
	}
	return nil
}

// EncodeCSV writes t as a comma separated table.
//
// Numbers are written as plain decimals and dates in ISO format, missing values as empty cells,
// so that the output can be decoded back into the same table.
func EncodeCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	rec := make([]string, len(t.series))
	for i := range t.Len() {
		for j, s := range t.series {
			rec[j] = s.String(i)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
