package seqops

import (
	"errors"
	"unicode/utf8"
)

// ErrChunkSize is returned when a chunk size below 1 is requested.
var ErrChunkSize = errors.New("seqops: chunk size must be at least 1")

// ReverseInChunks partitions list into contiguous chunks of size n (the last
// chunk may be shorter), reverses each chunk, and concatenates the chunks in
// their original order.
func ReverseInChunks[T any](list []T, n int) ([]T, error) {
	if n < 1 {
		return nil, ErrChunkSize
	}
	out := make([]T, 0, len(list))
	for start := 0; start < len(list); start += n {
		end := start + n
		if end > len(list) {
			end = len(list)
		}
		for i := end - 1; i >= start; i-- {
			out = append(out, list[i])
		}
	}
	return out, nil
}

// GroupByLength buckets strings by their character (rune) count. Each
// bucket keeps its strings in first-seen order; map key order is undefined,
// callers needing determinism sort the lengths.
func GroupByLength(items []string) map[int][]string {
	grouped := make(map[int][]string)
	for _, s := range items {
		n := utf8.RuneCountInString(s)
		grouped[n] = append(grouped[n], s)
	}
	return grouped
}
