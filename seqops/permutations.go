package seqops

import "sort"

// UniquePermutations returns every distinct permutation of nums, which may
// contain duplicates. For n elements with duplicate groups of sizes k1..km
// the result has n!/(k1!·...·km!) permutations. Output order is unspecified.
func UniquePermutations(nums []int) [][]int {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	var out [][]int
	used := make([]bool, len(sorted))
	perm := make([]int, 0, len(sorted))

	var walk func()
	walk = func() {
		if len(perm) == len(sorted) {
			out = append(out, append([]int(nil), perm...))
			return
		}
		for i := 0; i < len(sorted); i++ {
			// Skip used slots, and duplicate values whose earlier twin
			// is still unplaced (that branch produces the same multiset).
			if used[i] || (i > 0 && sorted[i] == sorted[i-1] && !used[i-1]) {
				continue
			}
			used[i] = true
			perm = append(perm, sorted[i])
			walk()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
