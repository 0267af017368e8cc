// Package folio provides the core types and operations for tracking
// simulated stock portfolios.
//
// The core functionalities include:
//   - Lot Ledger: recording purchases as dated lots, merging same-day
//     purchases, and selling shares oldest lot first, under a strict
//     chronological transaction order.
//   - Valuation: pricing holdings at historical closing prices to compute
//     total value and per-ticker value distributions.
//   - Rebalancing: adjusting holdings so value shares match integer target
//     weights, without changing the total value.
//   - Performance: sampling a portfolio's value over historical windows with
//     span-dependent sampling plans.
//   - Market Data: a QuoteService abstraction with an Alpha Vantage backed
//     implementation, plus single-stock analyses (gain/loss, moving
//     averages, crossovers).
//   - Data Persistence: encoding portfolios to human-readable JSONL files,
//     one file per portfolio in a data directory.
//
// This package serves as the foundational logic for the `fcs` command-line
// tool.
package folio
