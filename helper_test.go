package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// dutchExport is a small account export as downloaded with the Dutch interface.
const dutchExport = `Datum,Tijd,Product,ISIN,Aantal,Koers,,Lokale waarde,,Waarde,,Totaal,
05-01-2024,09:01,APPLE INC,US0378331005,10,"185,50",USD,"-1.855,00",USD,"-1.700,25",EUR,"-1.702,25",EUR
12-02-2024,10:15,APPLE INC,US0378331005,-3,"190,00",USD,"570,00",USD,"525,10",EUR,"523,10",EUR
01-03-2024,14:30,VANGUARD FTSE ALL-WORLD,IE00B3RBWM25,5,"110,20",EUR,"-551,00",EUR,"-551,00",EUR,"-552,00",EUR
15-03-2024,00:00,iDEAL storting,,,,,,,,,"1.000,00",EUR
`

// dec is a helper for test to create a valid decimal from a const.
func dec(s string) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.RequireFromString(s)) }

// writeFile writes content into a new file in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// equalNull reports whether a and b are both missing, or both the same number.
func equalNull(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}
