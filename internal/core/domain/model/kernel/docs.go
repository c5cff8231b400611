// Package kernel provides core domain primitives shared across the commerce
// domain model.
//
// The package includes:
//   - Money: a value object for exact monetary amounts with explicit
//     half-up rounding to the 2-decimal money scale
//
// These primitives are immutable and safe for concurrent use. They carry no
// persistence or framework concerns; adapters map them to storage types.
package kernel
