// Package coverage checks whether grouped timestamped records span the
// required observation window.
package coverage
