package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

type staticProvider struct {
	prices *date.History[float64]
	from   date.Date
}

func (s *staticProvider) DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error) {
	s.from = from
	return s.prices, nil
}

func testPortfolio() (*Portfolio, *staticProvider) {
	h := new(date.History[float64])
	for i, v := range []float64{100, 120, 90, 130} {
		h.Append(date.New(2024, 3, 1).Add(i), v)
	}
	provider := &staticProvider{prices: h}
	return &Portfolio{
		Analysis: &analytics.Analysis{
			Currency: "EUR",
			Start:    date.New(2024, 1, 5),
			Holdings: []analytics.Holding{{Product: "APPLE INC", ISIN: "US0378331005", Quantity: analytics.Q(7), Invested: analytics.M(decimal.NewFromInt(1179), "EUR")}},
		},
		Provider: provider,
	}, provider
}

func TestHoldingsTool(t *testing.T) {
	p, _ := testPortfolio()
	resp := HoldingsTool(p).Call(context.Background(), "1", nil)
	out, _ := resp.Response["output"].(string)
	if resp.Name != "Holdings" || !strings.Contains(out, "APPLE INC") {
		t.Errorf("Holdings() = %v", resp.Response)
	}
}

func TestBenchmarkTool(t *testing.T) {
	p, provider := testPortfolio()
	tool := BenchmarkTool(p)

	resp := tool.Call(context.Background(), "2", map[string]any{"symbol": "^GSPC"})
	out, _ := resp.Response["output"].(string)
	if !strings.Contains(out, "-25.00%") {
		t.Errorf("Benchmark() = %v, want the max drawdown", resp.Response)
	}
	if provider.from != date.New(2024, 1, 5) {
		t.Errorf("Benchmark() from = %s, want the analysis start", provider.from)
	}

	tool.Call(context.Background(), "3", map[string]any{"symbol": "^GSPC", "from": "2024-02-01"})
	if provider.from != date.New(2024, 2, 1) {
		t.Errorf("Benchmark() from = %s, want 2024-02-01", provider.from)
	}

	for _, args := range []map[string]any{{}, {"symbol": "^GSPC", "from": "last year"}, {"symbol": "^GSPC", "from": 2024}} {
		if resp := tool.Call(context.Background(), "4", args); resp.Response["error"] == nil {
			t.Errorf("Benchmark(%v) = %v, want an error", args, resp.Response)
		}
	}
}

func TestNewLibrary(t *testing.T) {
	p, _ := testPortfolio()
	lib := NewLibrary([]Function{HoldingsTool(p), BenchmarkTool(p)})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "Holdings"})
	if _, ok := resp.Response["output"]; !ok {
		t.Errorf("Library(Holdings) = %v", resp.Response)
	}
	resp = lib(context.Background(), &genai.FunctionCall{ID: "2", Name: "Transfer"})
	if resp.Response["error"] != "unknown function Transfer" {
		t.Errorf("Library(Transfer) = %v, want an unknown function error", resp.Response)
	}
}

func TestNewAnalyst(t *testing.T) {
	p, _ := testPortfolio()
	a := NewAnalyst(p)
	decls := a.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Holdings" || decls[1].Name != "Benchmark" {
		t.Errorf("NewAnalyst() tools = %v", decls)
	}
	f := newFacilitator(a, NewTrader())
	if got := len(f.Config.Tools[0].FunctionDeclarations); got != 2 {
		t.Errorf("facilitator knows %d experts, want 2", got)
	}
}
