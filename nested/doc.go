// Package nested flattens nested key-value structures into single-level
// maps with dotted-path keys.
package nested
