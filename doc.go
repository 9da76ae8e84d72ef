// Package tripsplit provides the accounting engine for splitting shared
// expenses among the travelers of a trip.
//
// The core functionalities include:
//   - Trip Ledger: an immutable, chronological record of travelers, shared
//     expenses and manual reimbursements, persisted in a human-readable
//     JSONL format.
//   - Balance Aggregation: a stateless engine that folds the transaction
//     list into a per-traveler, per-currency balance sheet (amount paid,
//     fair share, net balance).
//   - Debt Simplification: a greedy matcher that turns the net balances of
//     each currency into a short list of traveler-to-traveler transfers
//     settling everyone up.
//   - Data Import: mapping of third-party JSON exports into trip
//     transactions.
//
// Each currency is accounted for independently; the engine performs no
// exchange-rate conversion. All computations are pure functions over a
// snapshot of the trip: the balance sheet and the settlement plan are
// recomputed from scratch on every call.
//
// This package serves as the foundational logic for the `trip` command-line
// tool.
package tripsplit
