// Package order provides the Order aggregate for the shipping-order
// administration domain.
//
// The package includes:
//   - Order: the aggregate root with customer data, a free-text location
//     snapshot, line items, and a lifecycle status
//   - Product: a validated line item (name, quantity, weight)
//   - Status: the five-value lifecycle enum (Pending, Processing, Shipped,
//     Delivered, Cancelled)
//
// Key business rules:
//   - Orders start in Pending status and must have at least one line item
//   - Status is a flat enum write: any valid value may replace any other;
//     there is intentionally no transition graph
//   - Cost and weight accept zero: presence, not truthiness, decides validity
//   - The governorate/city pair is a creation-time snapshot, never a live
//     reference into the location registry
package order
