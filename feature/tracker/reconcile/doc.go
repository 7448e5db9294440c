// Package reconcile derives current stock levels from stored state.
//
// The server never trusts incremental rented counts: every read recomputes
// the per-device rented and available numbers from the inventory totals and
// the full transaction log, which keeps the derived values drift-free no
// matter what order writes landed in.
//
// Build is deterministic and free of side effects, so running it twice on
// the same snapshot of the store yields identical output.
package reconcile
