// Package seqops provides small sequence transformations: chunked reversal,
// grouping strings by length, and unique permutations of a multiset.
package seqops
