// Package order provides the Order aggregate root, its owned OrderItem line
// items, and the Status lifecycle guard.
//
// The package includes:
//   - Order: the aggregate root; owns line items, keeps the total consistent,
//     and carries the optimistic concurrency version counter
//   - OrderItem: a line item with a product snapshot (id, name, unit price)
//   - Status: the order lifecycle with a single guarded edge
//
// Key business rules:
//   - The total always equals round_half_up(sum of unitPrice x quantity, 2dp)
//     and is recomputed on every item mutation and again immediately before a
//     write
//   - Cancelled is terminal: no transition may leave it; all other
//     transitions are allowed
//   - Line items live and die with their order; removal is deletion
package order
