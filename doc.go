// Package fliplog provides the calculation engine for a small-business
// inventory-resale tracker. It turns raw acquisition costs, shared expenses,
// mileage logs, and per-item sale records into per-item and per-lot financial
// outcomes, and aggregates them over reporting periods.
//
// The core functionalities include:
//   - Cost Allocation: splitting a lot's combined acquisition cost and tax
//     across its items, behind a swappable allocation strategy.
//   - Profit Calculation: per-item and per-lot profit, ROI, and unsold
//     inventory valuation.
//   - Expense Splitting: dividing shared expenses evenly across linked lots.
//   - Mileage Deductions: converting logged trips into monetary deductions
//     using the per-mile rate captured on each trip.
//   - Aging: flagging items unsold past a staleness threshold and measuring
//     sell-through timing.
//   - Period Reporting: bucketing dated records into explicit ranges or named
//     clock-relative presets.
//
// The engine is pure and stateless: every function derives its output solely
// from its arguments, never mutates its inputs, and takes the current date as
// an explicit parameter wherever "now" matters. Record snapshots arrive from
// a thin JSONL ledger that this package also decodes and encodes, serving the
// `flp` command-line tool as its single source of truth.
package fliplog
