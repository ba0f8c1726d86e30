package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
)

func performance(t *testing.T, prices ...float64) *analytics.Performance {
	t.Helper()
	h := new(date.History[float64])
	for i, p := range prices {
		h.Append(date.New(2024, 1, 1).Add(i), p)
	}
	perf, err := analytics.NewPerformance(h)
	if err != nil {
		t.Fatal(err)
	}
	return perf
}

func TestHoldingsMarkdown(t *testing.T) {
	holdings := []analytics.Holding{
		{Product: "APPLE INC", ISIN: "US0378331005", Quantity: analytics.Q(7), Invested: analytics.M(decimal.RequireFromString("1179.15"), "EUR")},
		{Product: "VANGUARD FTSE ALL-WORLD", ISIN: "IE00B3RBWM25", Quantity: analytics.Q(5), Invested: analytics.M(decimal.RequireFromString("552"), "EUR")},
	}
	got := HoldingsMarkdown(holdings, "EUR")

	for _, want := range []string{"## Holdings", "Product", "APPLE INC", "US0378331005", "VANGUARD FTSE ALL-WORLD", "**2 positions**", "731.15"} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingsMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if got := HoldingsMarkdown(nil, "EUR"); !strings.Contains(got, "No open position.") {
		t.Errorf("HoldingsMarkdown(nil) = %q", got)
	}
}

func TestPerformanceMarkdown(t *testing.T) {
	got := PerformanceMarkdown("^GSPC", performance(t, 100, 120, 90, 130))
	for _, want := range []string{"## Benchmark ^GSPC", "2024-01-02 to 2024-01-04", "Max Drawdown", "-25.00%", "+30.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("PerformanceMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestMaxDrawdownLine(t *testing.T) {
	if got := MaxDrawdownLine(performance(t, 100, 120, 90, 130)); got != "Max Drawdown: -25.00%" {
		t.Errorf("MaxDrawdownLine() = %q", got)
	}
	if got := MaxDrawdownLine(performance(t, 100, 110, 121)); got != "Max Drawdown: 0.00%" {
		t.Errorf("MaxDrawdownLine() = %q", got)
	}
}

func TestQualityMarkdown(t *testing.T) {
	if got := QualityMarkdown(&analytics.Quality{Rows: 3}); got != "" {
		t.Errorf("QualityMarkdown(clean) = %q, want empty", got)
	}
	q := &analytics.Quality{Rows: 3, Coerced: map[string]int{analytics.ColPrice: 2}, InvalidISINs: 1}
	got := QualityMarkdown(q)
	for _, want := range []string{"## Data Quality", "Price", "ISIN (invalid, kept)"} {
		if !strings.Contains(got, want) {
			t.Errorf("QualityMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	a := &analytics.Analysis{
		Transactions: make([]analytics.Transaction, 4),
		Currency:     "EUR",
		Quality:      &analytics.Quality{Rows: 4},
		Benchmark:    "^GSPC",
		Performance:  performance(t, 100, 110),
	}
	got := AnalysisMarkdown(a)
	for _, want := range []string{"# Portfolio Analysis", "4 transactions, 0 open positions.", "## Holdings", "## Benchmark ^GSPC"} {
		if !strings.Contains(got, want) {
			t.Errorf("AnalysisMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Data Quality") {
		t.Errorf("AnalysisMarkdown() renders a clean quality report")
	}
}

func TestChart(t *testing.T) {
	perf := performance(t, 100, 120, 90, 130, 125, 140)
	got := Chart(perf.Cumulative, Style("mono"), 20, 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 4+2 {
		t.Fatalf("Chart() has %d lines, want 6:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "+40.00%") || !strings.Contains(lines[3], "-10.00%") {
		t.Errorf("Chart() value range labels are missing:\n%s", got)
	}
	if !strings.Contains(got, "█") {
		t.Errorf("Chart() draws no full block:\n%s", got)
	}
	if !strings.Contains(lines[5], "2024-01-02") || !strings.Contains(lines[5], "2024-01-06") {
		t.Errorf("Chart() date range is missing: %q", lines[5])
	}

	if Chart(nil, Style("darkgrid"), 20, 4) != "" {
		t.Errorf("Chart(nil) is not empty")
	}
}

func TestDownsample(t *testing.T) {
	got := downsample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("downsample() = %v, want [2 6]", got)
	}
}
