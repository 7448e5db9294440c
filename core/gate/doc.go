// Package gate provides the process-wide mutual-exclusion gate guarding the
// record store.
//
// All store operations, reads and writes alike, are serialized through a
// single weighted semaphore. Acquisition is bounded by a configurable
// timeout; when the timeout elapses the operation proceeds without the gate
// and a degraded-consistency warning is logged. Callers must tolerate the
// resulting small risk of interleaved access during a timed-out wait.
package gate
