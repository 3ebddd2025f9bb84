// Package finboard implements the aggregation and recurrence engine behind a
// personal-finance dashboard. It reconstructs balances from an immutable
// transaction ledger, projects and materializes recurring transactions, and
// derives the series and summaries the dashboard displays.
//
// The core functionalities include:
//   - Balance Reconstruction: Computing the all-time balance from account
//     opening balances and the full transaction history, and rebuilding a
//     daily running-balance series by walking transactions backward from the
//     present.
//   - Recurrence: Advancing recurring-transaction schedules under daily,
//     weekly, monthly and yearly frequencies with an explicit day-overflow
//     policy, projecting hypothetical future occurrences for display, and
//     materializing due occurrences as real transactions.
//   - Aggregation: Summing transactions into calendar-month buckets merged
//     with projected occurrences, and grouping a period's transactions by
//     category.
//   - Trading: Deriving win rate, profit factor, gross and net results and
//     balance growth from a trade ledger.
//
// Storage is a collaborator, not part of the engine: the engine consumes
// typed records through the Reader and Writer contracts in store.go, and the
// gormstore subpackage provides the relational implementation used by the
// `finboard` command-line tool.
package finboard
