// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - OrderNumberGenerator: draws unique six-digit order numbers with a bounded
//     number of attempts, using an injected RandomSource
package services
