package geodist

import (
	"math"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
)

// Location is one dataset row: an id and its coordinate.
type Location struct {
	ID    string
	Point orb.Point
}

// Matrix is a square id-indexed distance table in meters. IDs carries the
// row/column order; Dist[a][b] is the distance from a to b.
type Matrix struct {
	IDs  []string                      `json:"ids"`
	Dist map[string]map[string]float64 `json:"distances"`
}

// Record is one unrolled (id_start, id_end, distance) row.
type Record struct {
	IDStart  string  `json:"id_start"`
	IDEnd    string  `json:"id_end"`
	Distance float64 `json:"distance"`
}

// MeanDistance pairs an id with its mean outbound distance.
type MeanDistance struct {
	IDStart string  `json:"id_start"`
	Mean    float64 `json:"distance"`
}

// BuildMatrix computes the pairwise haversine distance matrix for locs.
// The diagonal is exactly 0. Duplicate ids keep their first position in the
// id order; the last coordinate seen for an id wins.
func BuildMatrix(locs []Location) *Matrix {
	ids := make([]string, 0, len(locs))
	coords := make(map[string]orb.Point, len(locs))
	for _, l := range locs {
		if _, seen := coords[l.ID]; !seen {
			ids = append(ids, l.ID)
		}
		coords[l.ID] = l.Point
	}

	m := &Matrix{IDs: ids, Dist: make(map[string]map[string]float64, len(ids))}
	for _, a := range ids {
		row := make(map[string]float64, len(ids))
		for _, b := range ids {
			if a == b {
				row[b] = 0
				continue
			}
			row[b] = HaversineMeters(coords[a], coords[b])
		}
		m.Dist[a] = row
	}
	return m
}

// Unroll flattens m into one record per ordered (row, column) id pair,
// self-pairs included, in row-major order over m.IDs.
func Unroll(m *Matrix) []Record {
	out := make([]Record, 0, len(m.IDs)*len(m.IDs))
	for _, start := range m.IDs {
		for _, end := range m.IDs {
			out = append(out, Record{IDStart: start, IDEnd: end, Distance: m.Dist[start][end]})
		}
	}
	return out
}

// FindIDsWithinThreshold returns every id whose mean distance over its
// outbound records lies within ±10% (inclusive) of referenceID's mean,
// sorted by id ascending. If referenceID has no records its mean is NaN and
// the result is empty.
func FindIDsWithinThreshold(records []Record, referenceID string) []MeanDistance {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var refSum float64
	var refN int
	for _, r := range records {
		sums[r.IDStart] += r.Distance
		counts[r.IDStart]++
		if r.IDStart == referenceID {
			refSum += r.Distance
			refN++
		}
	}

	refMean := math.NaN()
	if refN > 0 {
		refMean = refSum / float64(refN)
	}
	lower := refMean * 0.9
	upper := refMean * 1.1

	out := make([]MeanDistance, 0, len(sums))
	for id, sum := range sums {
		mean := sum / float64(counts[id])
		if mean >= lower && mean <= upper {
			out = append(out, MeanDistance{IDStart: id, Mean: mean})
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].IDStart, out[j].IDStart) })
	return out
}

// lessID orders ids numerically when both parse as integers, otherwise
// lexicographically. Location ids in the toll datasets are numeric strings.
func lessID(a, b string) bool {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
