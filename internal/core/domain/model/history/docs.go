// Package history contains the archived order aggregate and the copy
// pipeline between it and the live order aggregate.
//
// An ArchivedOrder is the immutable terminal record of an order: it only ever
// carries a terminal status (completed or cancelled) and preserves the live
// order's timestamps verbatim. It owns archived twins of the order's item
// lines, payments, and status audit trail.
//
// The conversions implement the archival engine's copy discipline:
//
//   - FromCompletedOrder / ToOrder are lenient: a child row that fails to
//     copy is reported back to the caller (to log) and skipped, so the parent
//     record always completes its move
//   - FromCancelledOrder is strict: any child failure aborts the whole
//     cancellation, because a user-initiated cancel must either fully succeed
//     or leave the live order untouched
//
// Deleting the source record only after the copy fully succeeded is the
// callers' responsibility; that discipline, not a database constraint, is
// what keeps an order code in exactly one of the two tables.
package history
