// Package order holds the Order aggregate of the flower delivery marketplace.
//
// An order is placed by a member shop for delivery on a given date. It carries
// a six-digit public Number, pricing in kernel.Money, and owned collections of
// options, card messages and senders. Its lifecycle is governed by Status:
//
//	PENDING -> CONFIRMED -> PREPARING -> DELIVERED, CANCELLED from any non-terminal state
//
// Orders are built from a Draft by NewOrder, restored from storage by
// RestoreOrder and soft-deleted rather than removed. Filter and the search
// helpers describe the optional conditions of the filtered order listing.
package order
