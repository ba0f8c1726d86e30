package analytics

import (
	"errors"
	"math"

	"github.com/etnz/analytics/date"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientPrices is returned when a price series is too short to compute any return.
var ErrInsufficientPrices = errors.New("at least two prices are required")

// TradingDays is the number of trading days per year used to annualize volatility.
const TradingDays = 252

// Point is a dated value.
type Point struct {
	Date  date.Date
	Value float64
}

// Performance holds the return and drawdown series of a price series.
//
// Every series is aligned on the return dates: the first price anchors the series and has no
// point of its own.
type Performance struct {
	Returns    []Point // period returns, 0.1 for +10%
	Cumulative []Point // growth factor since the first price
	Peak       []Point // running maximum of Cumulative
	Drawdown   []Point // Cumulative / Peak - 1, always <= 0

	MaxDrawdown float64 // minimum of Drawdown
	TotalReturn float64 // last Cumulative - 1
	Volatility  float64 // annualized standard deviation of Returns
}

// NewPerformance computes the performance of a price series.
//
// Zero or negative prices are not rejected: they flow through the arithmetic as is.
func NewPerformance(prices *date.History[float64]) (*Performance, error) {
	days, values := prices.Slices()
	if len(values) < 2 {
		return nil, ErrInsufficientPrices
	}
	n := len(values) - 1
	days = days[1:]

	returns := make([]float64, n)
	growth := make([]float64, n)
	for i := range n {
		returns[i] = values[i+1]/values[i] - 1
		growth[i] = 1 + returns[i]
	}
	cum := floats.CumProd(make([]float64, n), growth)

	peak := make([]float64, n)
	drawdown := make([]float64, n)
	for i, c := range cum {
		peak[i] = c
		if i > 0 {
			peak[i] = math.Max(peak[i-1], c)
		}
		drawdown[i] = c/peak[i] - 1
	}

	p := &Performance{
		Returns:     points(days, returns),
		Cumulative:  points(days, cum),
		Peak:        points(days, peak),
		Drawdown:    points(days, drawdown),
		MaxDrawdown: floats.Min(drawdown),
		TotalReturn: cum[n-1] - 1,
	}
	if n > 1 {
		p.Volatility = stat.StdDev(returns, nil) * math.Sqrt(TradingDays)
	}
	return p, nil
}

func points(days []date.Date, values []float64) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{days[i], v}
	}
	return pts
}
