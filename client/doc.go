// Package client provides the consumer-side state cache and optimistic
// sync protocol for the tracker API.
//
// The Client holds a disposable, process-local mirror of the server's
// derived state. Each local action runs a fixed cycle: deep-copy the cache
// as a rollback point, mutate it optimistically using the same derivation
// rules the server applies, notify the render hook, commit the matching
// write over the network, then either replace the cache wholesale from an
// authoritative read (success) or restore the snapshot verbatim (failure).
//
// Optimistic values are provisional, UI-only approximations; the post-pull
// values are the single source of truth. Locally created transactions
// carry a pending row reference until a pull assigns the real one, and
// identifier-dependent operations on pending records are refused with
// ErrNotSynced rather than attempted best-effort.
//
// Sync cycles are serialized per client instance. Failed commits are not
// retried; the caller surfaces the error and the user re-triggers the
// action.
package client
