// Package kernel provides value objects shared by the order, member and catalog
// aggregates: UUID identifiers, whole-unit Money backed by shopspring/decimal,
// the Audit trail used for soft deletion, and calendar-date helpers around Clock.
//
// All values are immutable and safe for concurrent use.
package kernel
