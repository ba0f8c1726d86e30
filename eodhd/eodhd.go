// Package eodhd provides daily prices from the EOD Historical Data API (https://eodhd.com).
package eodhd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/httpcache"
	"github.com/shopspring/decimal"
)

// DefaultURL is the EODHD API root.
const DefaultURL = "https://eodhd.com/api"

// Provider fetches adjusted closing prices from EODHD.
type Provider struct {
	APIKey  string
	BaseURL string       // defaults to DefaultURL
	Client  *http.Client // defaults to a daily caching client
}

// New returns a Provider using a daily disk cache.
func New(apiKey string) *Provider {
	return &Provider{APIKey: apiKey, BaseURL: DefaultURL, Client: httpcache.Daily("")}
}

// Symbol converts a Yahoo style symbol into the EODHD one.
//
// Indices are prefixed with '^' on Yahoo ("^GSPC") and belong to the INDX exchange on EODHD
// ("GSPC.INDX"). Other symbols are returned unchanged.
func Symbol(symbol string) string {
	if s, ok := strings.CutPrefix(symbol, "^"); ok {
		return s + ".INDX"
	}
	return symbol
}

// DailyPrices returns the adjusted closing prices of symbol since 'from', up to today.
func (p *Provider) DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// bounds are included in the response, and time is limited to 1 year with free subscription.
	base, client := p.BaseURL, p.Client
	if base == "" {
		base = DefaultURL
	}
	if client == nil {
		client = httpcache.Daily("")
	}

	q := url.Values{}
	q.Set("fmt", "json")
	q.Set("api_token", p.APIKey)
	if !from.IsZero() {
		q.Set("from", from.String())
	}
	q.Set("to", date.Today().String())
	addr := fmt.Sprintf("%s/eod/%s?%s", base, url.PathEscape(Symbol(symbol)), q.Encode())

	type Info struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := httpcache.GetJSON(ctx, client, addr, &content); err != nil {
		return nil, fmt.Errorf("eodhd prices for %q: %w", symbol, err)
	}

	h := new(date.History[float64])
	for _, info := range content {
		h.Append(info.Date, info.AdjustedClose.InexactFloat64())
	}
	return h, nil
}
