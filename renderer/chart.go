package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/analytics"
)

// Block elements for sub-character vertical resolution (1/8 to 8/8).
var blockChars = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ChartStyle holds the colors of a chart.
type ChartStyle struct {
	Above, Below lipgloss.TerminalColor // bars above and below the baseline
	Axis         lipgloss.TerminalColor
	Grid         bool // draw horizontal grid lines on empty cells
}

// Style returns the chart style named 'name' (darkgrid, plain or mono), darkgrid if unknown.
func Style(name string) ChartStyle {
	switch name {
	case "plain":
		return ChartStyle{Above: lipgloss.Color("2"), Below: lipgloss.Color("1"), Axis: lipgloss.NoColor{}}
	case "mono":
		return ChartStyle{Above: lipgloss.NoColor{}, Below: lipgloss.NoColor{}, Axis: lipgloss.NoColor{}}
	default:
		return ChartStyle{Above: lipgloss.Color("#2ecc71"), Below: lipgloss.Color("#e74c3c"), Axis: lipgloss.Color("#7f8c8d"), Grid: true}
	}
}

// Chart renders a growth series (1.0 being flat) as a filled block chart, with the value range
// on the left and the date range below.
func Chart(points []analytics.Point, style ChartStyle, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Value
	}
	// Downsample data to width columns via averaging.
	cols := downsample(data, width)

	minVal, maxVal := cols[0], cols[0]
	for _, v := range cols {
		minVal, maxVal = min(minVal, v), max(maxVal, v)
	}

	// Total sub-cell levels across all rows.
	totalLevels := height * 8
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
	}

	// Scale each column to 1..totalLevels (at least 1 so every column is visible).
	scaled := make([]int, len(cols))
	for i, v := range cols {
		s := int((v-minVal)/valRange*float64(totalLevels-1)) + 1
		scaled[i] = min(s, totalLevels)
	}

	axis := lipgloss.NewStyle().Foreground(style.Axis)
	above := lipgloss.NewStyle().Foreground(style.Above)
	below := lipgloss.NewStyle().Foreground(style.Below)

	top, bottom := analytics.Ratio(maxVal-1).SignedString(), analytics.Ratio(minVal-1).SignedString()
	labelWidth := max(len(top), len(bottom))

	rows := make([]string, height)
	for row := range height {
		// This row represents levels from rowBottom to rowTop.
		rowBottom := (height - 1 - row) * 8

		label := ""
		switch row {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		var sb strings.Builder
		sb.WriteString(axis.Render(fmt.Sprintf("%*s │", labelWidth, label)))
		for col, level := range scaled {
			fill := level - rowBottom
			if fill <= 0 {
				if style.Grid && row%2 == 0 {
					sb.WriteString(axis.Render("·"))
				} else {
					sb.WriteRune(' ')
				}
				continue
			}
			ch := string(blockChars[min(fill, 8)])
			if cols[col] < 1 {
				sb.WriteString(below.Render(ch))
			} else {
				sb.WriteString(above.Render(ch))
			}
		}
		rows[row] = sb.String()
	}

	first, last := points[0].Date.String(), points[len(points)-1].Date.String()
	gap := max(1, len(cols)-len(first)-len(last))
	footer := fmt.Sprintf("%*s └%s\n%*s  %s%s%s", labelWidth, "", strings.Repeat("─", len(cols)), labelWidth, "", first, strings.Repeat(" ", gap), last)
	return strings.Join(rows, "\n") + "\n" + axis.Render(footer)
}

// downsample reduces data to n points by averaging buckets.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	out := make([]float64, n)
	bucketSize := float64(len(data)) / float64(n)
	for i := range n {
		start := int(float64(i) * bucketSize)
		end := min(int(float64(i+1)*bucketSize), len(data))
		sum := 0.0
		for j := start; j < end; j++ {
			sum += data[j]
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
