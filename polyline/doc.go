// Package polyline decodes semicolon-delimited "lat,lng" coordinate strings
// into point sequences with per-step planar distances.
package polyline
