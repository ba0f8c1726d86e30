package agent

import (
	"context"
	"fmt"

	"github.com/etnz/analytics"
	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/docs"
	"github.com/etnz/analytics/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Portfolio is what the assistant knows about the user.
type Portfolio struct {
	Analysis *analytics.Analysis      // loaded transactions and holdings
	Provider analytics.PriceProvider // to fetch any benchmark
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user comes with questions about the positions in his brokerage account and how the
			market, measured by benchmarks, performed over the same period.
			Devise a plan of questions to ask to each expert and answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded with Google Search.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader, aware of the financial products, indices and funds,
		and of the latest news about them. Ask the Trader whenever you need recent or grounding
		information, or the benchmark symbol of an index.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading, you can search and find about anything related to
			financial institutions, companies, markets, funds and indices. You leverage Google Search
			to ground your assertions. Symbols follow Yahoo Finance conventions (^GSPC, IWDA.AS).
				`}}},
		},
	}
}

// NewAnalyst returns the expert reading the user's portfolio.
func NewAnalyst(p *Portfolio) *Expert {
	lib := []Function{HoldingsTool(p), BenchmarkTool(p)}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read the user's transaction export, knows the
		current positions, and computes the performance and drawdown of any benchmark.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio.
				Use the available tools to get information about
				  - the current holdings (product, ISIN, quantity, invested amount)
				  - the return, volatility and maximum drawdown of a benchmark since a date
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// HoldingsTool lists the current positions.
func HoldingsTool(p *Portfolio) *Func {
	const name = "Holdings"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Holdings lists the positions currently held, reconstructed from the user's transaction export.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the product name, ISIN, net quantity and invested amount of every open position.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			a := p.Analysis
			out := renderer.HoldingsMarkdown(a.Holdings, a.Currency)
			if q := renderer.QualityMarkdown(a.Quality); q != "" {
				out += "\n" + q
			}
			return success(id, name, out)
		},
	}
}

// BenchmarkTool computes the performance of a symbol.
func BenchmarkTool(p *Portfolio) *Func {
	const name = "Benchmark"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Benchmark computes the total return, annualized volatility and maximum drawdown of a symbol's daily adjusted closing prices.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The Yahoo Finance symbol, like ^GSPC for the S&P 500.",
					},
					"from": {
						Type: genai.TypeString,
						Description: `The first day of the period. The first transaction day is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the benchmark statistics.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, ok := args["symbol"].(string)
			if !ok || symbol == "" {
				return failure(id, name, fmt.Errorf("argument 'symbol' is required"))
			}
			from, err := parseDate(args, p.Analysis.Start)
			if err != nil {
				return failure(id, name, err)
			}
			prices, err := p.Provider.DailyPrices(ctx, symbol, from)
			if err != nil {
				return failure(id, name, err)
			}
			perf, err := analytics.NewPerformance(prices)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.PerformanceMarkdown(symbol, perf))
		},
	}
}

func parseDate(args map[string]any, def date.Date) (date.Date, error) {
	idate, hasDate := args["from"]
	if !hasDate {
		return def, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return def, fmt.Errorf("argument 'from' is not a string as expected but %T", idate)
	}
	d, err := date.Parse(sdate)
	if err != nil {
		return def, fmt.Errorf("argument 'from' must be a valid date got %q. Below is the doc about the format date\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return d, nil
}
