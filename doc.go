// Package rentfolio provides a pure calculation engine for rental real-estate
// finances. It derives cash flow, net operating income, debt service, equity,
// and IRS straight-line depreciation figures from structured property records
// and/or raw transaction streams, with deterministic fallback rules when data
// is partial.
//
// The core functionalities include:
//   - Income and expense aggregation: blending structured rental-income and
//     operating-expense records with transaction-derived figures, under an
//     explicit precedence rule (structured data wins unless absent or zero).
//   - NOI and cash-flow analysis: projected (structured) and actual
//     (transaction-derived) tracks computed independently, with variance
//     reporting between the two.
//   - Debt service: fixed-rate amortization and per-loan payment roll-up
//     across active loans.
//   - Depreciation and tax shield: IRS mid-month-convention straight-line
//     schedules (27.5-year residential, 39-year commercial), accumulated
//     depreciation tracking, tax-shield valuation, and a cost-segregation
//     acceleration estimate.
//
// Every function is a pure computation over in-memory arguments: no I/O, no
// shared state, no hidden dependency on wall-clock time. Where "now" matters
// it is an explicit parameter. Composite results carry a confidence Status so
// that a value computed from partial data is visibly distinguishable from one
// computed from complete data.
//
// This package serves as the foundational logic for the `rfo` command-line
// tool.
package rentfolio
