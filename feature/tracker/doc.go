// Package tracker implements the equipment loan tracking feature.
//
// It mirrors a two-sheet layout: an inventory table mapping device names to
// total stock, and an append-only transaction log of loan and return
// events. Current rented and available counts are always recomputed from
// the full log (see feature/tracker/reconcile), never trusted
// incrementally.
//
// # Components
//
//   - Store: GORM-backed persistence with the 1-based sheet-row identifier
//     mapping (row 1 is the header, data starts at row 2).
//   - Service: the request operations (read, addTransaction,
//     updateInventory, updateStatus), each serialized through the store
//     gate with a bounded wait.
//   - Handler: the Fiber routes, GET /api for the read endpoint and
//     POST /api for the action-tagged write endpoint.
//   - ReceiptArchive: best-effort plain-text delivery receipts stored in
//     object storage for each recorded loan.
//
// Store faults are caught at the operation boundary and shaped into
// structured error responses; they never reach the caller raw.
package tracker
