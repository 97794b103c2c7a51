// Package kernel provides core domain primitives shared across the
// shipping-order administration domain.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Role: the closed set of caller roles (admin, employee, merchant)
//   - Caller: a resolved caller identity (user id + role) with explicit
//     allowed-role authorization checks
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
