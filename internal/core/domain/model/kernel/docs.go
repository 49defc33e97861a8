// Package kernel provides core domain primitives shared across the driver
// order workflow model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Geolocation: GPS coordinates with a bounded accuracy invariant
//   - Money: a non-negative amount in minor units with a currency code
//
// These primitives enforce domain invariants at construction time. They are
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
