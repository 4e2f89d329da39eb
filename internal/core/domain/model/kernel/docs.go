// Package kernel contains the shared value objects of the domain model.
//
// It provides:
//   - UUID: the opaque identifier used for all persisted records
//   - Code: the externally visible 8-digit order code that stays unique
//     across the live and archived order tables
//
// Value objects in this package are immutable and validated on construction.
// The zero value of each type is invalid and is rejected by Validate, which
// lets aggregates detect fields that bypassed a constructor.
package kernel
