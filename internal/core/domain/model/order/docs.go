// Package order contains the live order aggregate and its child entities.
//
// Order is the aggregate root for everything that happens to an order while it
// is active: item lines (with prices snapshotted at creation time), recorded
// payments, and the append-only status audit trail. The aggregate owns the two
// pure calculations the lifecycle engine is built on:
//
//   - settlement: RequiredAmount (total plus delivery charge for delivery
//     orders) versus SettledAmount (sum of recorded payments), computed with
//     exact decimals
//   - status transitions: per-order-type allowed status sets, with UI alias
//     normalization ("cooking" -> preparing, "complete" -> completed) and a
//     settlement gate on the transition into Completed
//
// Once an order reaches a terminal status it leaves this package: the archival
// engine (package history) copies it into an immutable archived record and the
// live row is deleted.
package order
