// Package yahoo provides daily prices from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/analytics/date"
	"github.com/etnz/analytics/httpcache"
	"golang.org/x/net/publicsuffix"
)

// DefaultURL is the Yahoo Finance API root.
const DefaultURL = "https://query1.finance.yahoo.com"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Provider fetches adjusted closing prices from Yahoo Finance.
type Provider struct {
	BaseURL string // defaults to DefaultURL
	Client  *http.Client
}

// New returns a Provider keeping Yahoo's session cookies, with a daily disk cache.
func New() (*Provider, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	client := &http.Client{
		Jar:       jar,
		Transport: browser{http.DefaultTransport},
		Timeout:   30 * time.Second,
	}
	return &Provider{BaseURL: DefaultURL, Client: httpcache.Wrap(client, "")}, nil
}

// browser sets a browser user agent, Yahoo rejects the default one.
type browser struct{ base http.RoundTripper }

func (b browser) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", userAgent)
	return b.base.RoundTrip(req)
}

// DailyPrices returns the adjusted closing prices of symbol since 'from', up to today.
//
// Days without a price (null in the payload) are skipped.
func (p *Provider) DailyPrices(ctx context.Context, symbol string, from date.Date) (*date.History[float64], error) {
	base, client := p.BaseURL, p.Client
	if base == "" {
		base = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var period1 int64
	if !from.IsZero() {
		period1 = from.Time().Unix()
	}
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(period1, 10))
	q.Set("period2", strconv.FormatInt(date.Today().Add(1).Time().Unix(), 10))
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(symbol), q.Encode())

	var jobj any
	if err := httpcache.GetJSON(ctx, client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("yahoo prices for %q: %w", symbol, err)
	}
	return parseChart(jobj)
}

// parseChart extracts the daily prices of a chart payload.
//
//	{"chart": {"result": [{
//	    "meta": {"currency": "USD", "symbol": "^GSPC", "gmtoffset": -14400, ...},
//	    "timestamp": [1704205800, ...],
//	    "indicators": {
//	        "quote": [{"close": [4742.830078125, ...], ...}],
//	        "adjclose": [{"adjclose": [4742.830078125, ...]}]
//	    }
//	}], "error": null}}
func parseChart(jobj any) (*date.History[float64], error) {
	timestamps, err := list(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, err
	}
	closes, err := list(jobj, "$.chart.result[0].indicators.adjclose[0].adjclose")
	if err != nil {
		// some instruments have no adjusted close.
		if closes, err = list(jobj, "$.chart.result[0].indicators.quote[0].close"); err != nil {
			return nil, err
		}
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("yahoo chart has %d timestamps but %d prices", len(timestamps), len(closes))
	}

	// timestamps are market open times, shifted to the exchange time zone to get the trading day.
	var offset float64
	if v, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = v.(float64)
	}

	h := new(date.History[float64])
	for i, ts := range timestamps {
		sec, ok := ts.(float64)
		price, okp := closes[i].(float64)
		if !ok || !okp {
			continue
		}
		day := date.FromTime(time.Unix(int64(sec+offset), 0))
		h.Append(day, price)
	}
	return h, nil
}

// list evaluates a jsonpath that must resolve to an array.
func list(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing yahoo chart %q: %w", path, err)
	}
	values, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing yahoo chart %q: not a list %v", path, jval)
	}
	return values, nil
}
