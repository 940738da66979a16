// Package formatter renders transformation results as JSON or CSV.
//
// Map-backed results (coverage checks) are flattened to key-sorted row
// slices first so output is deterministic.
package formatter
