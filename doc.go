// Package advisor turns a snapshot of an individual's brokerage account into
// actionable figures. It is designed to be deterministic and side-effect free,
// so that every number shown to the user can be traced back to the input.
//
// The core functionalities include:
//   - Metrics: valuation, unrealized gains, allocation and drift, weighted
//     expected return, concentration and positions in loss.
//   - Actions: a fixed catalog of rules (deploy cash, TFSA, RRSP, rebalance,
//     tax-loss harvest, reduce concentration) scored from 0 to 100 and ranked.
//   - Scenarios: year-by-year projections of the account value under a base,
//     a recession and a bull regime, with a heuristic goal probability.
//
// Every computation is a pure function of its input. The static tables
// (expected returns per security, return assumptions per risk tolerance) are
// read-only and built once, see [Tables].
//
// This package serves as the foundational logic for the `edge` command-line
// tool and its HTTP API; narration and chat live in the agent package and only
// consume an already computed [Analysis].
package advisor
