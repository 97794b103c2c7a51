// Package location provides the two-level geographic hierarchy used to price
// shipping: Governorate (top-level grouping) and City (carries the shipping
// cost). City depends on Governorate by reference; Governorate is the true
// leaf of the dependency graph.
//
// Key business rules:
//   - Governorate names and codes are globally unique; codes are stored uppercase
//   - A city name is unique within its governorate but may recur under others
//   - Deactivation is a soft visibility flag and never cascades
//   - A governorate with referencing cities cannot be deleted
package location
