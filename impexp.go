package analytics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/etnz/analytics/date"
)

// Prices holds daily price series by symbol.
type Prices map[string]*date.History[float64]

// Merge adds the points of h to the series of symbol, h wins on common days.
func (p Prices) Merge(symbol string, h *date.History[float64]) {
	dst, ok := p[symbol]
	if !ok {
		dst = new(date.History[float64])
		p[symbol] = dst
	}
	for day, value := range h.Values() {
		dst.Append(day, value)
	}
}

// this file contains functions to handle the price import/export format.
// It should remain human readable, single file and be easy to merge.

type jprices struct {
	Ticker  string             `json:"ticker"`
	History map[string]float64 `json:"history"`
}

// ImportPrices reads price series from 'r' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object whose property 'ticker' contains
// the symbol and property 'history' a single json object whose properties are dates in the
// YYYY-MM-DD format and values are prices.
//
// Lines for the same ticker are merged, later lines win.
func ImportPrices(r io.Reader) (Prices, error) {
	prices := make(Prices)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jprices
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("cannot parse line for price import format: %q: %w", string(line), err)
		}
		h, ok := prices[js.Ticker]
		if !ok {
			h = new(date.History[float64])
			prices[js.Ticker] = h
		}
		// ISO days sort chronologically, appending in order avoids sorting the history.
		for _, day := range slices.Sorted(maps.Keys(js.History)) {
			on, err := time.Parse(date.DateFormat, day)
			if err != nil {
				return nil, fmt.Errorf("invalid date for %q: %w", js.Ticker, err)
			}
			h.Append(date.FromTime(on), js.History[day])
		}
	}
	return prices, scanner.Err()
}

// ExportPrices writes prices to 'w' in the import/export format, one line per symbol in
// alphabetical order.
func ExportPrices(w io.Writer, prices Prices) error {
	for _, ticker := range slices.Sorted(maps.Keys(prices)) {
		js := jprices{
			Ticker:  ticker,
			History: make(map[string]float64),
		}
		for day, value := range prices[ticker].Values() {
			js.History[day.String()] = value
		}
		data, err := json.Marshal(js)
		if err != nil {
			return fmt.Errorf("cannot marshal prices %q: %w", ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write price format: %w", err)
		}
	}
	return nil
}
