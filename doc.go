// Package analytics analyzes a brokerage transaction export against a market benchmark.
//
// The analysis runs as a short pipeline of independent stages:
//   - Loading: the export is decoded as CSV into a column oriented [Table] ([Load], [Decode]).
//   - Normalization: columns are renamed from any supported export language to canonical
//     names, and European formatted numbers and day first dates are converted
//     ([ColumnMap.Normalize]). Cells that cannot be converted become missing values and are
//     counted in a [Quality] report.
//   - Holdings: trades are summed, exactly, per product and ISIN ([NewHoldings]).
//   - Performance: daily returns, cumulative return, drawdown and volatility of a benchmark
//     price series ([NewPerformance]), fetched through a [PriceProvider].
//
// [Pipeline] wires the stages together for the `pfa` command line tool.
package analytics
