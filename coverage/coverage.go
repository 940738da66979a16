package coverage

import "time"

// Record is one timestamped observation for an (id, id_2) pair.
type Record struct {
	ID        string
	ID2       string
	Timestamp time.Time
}

// PairKey identifies one (id, id_2) group.
type PairKey struct {
	ID  string `json:"id"`
	ID2 string `json:"id_2"`
}

// Check groups records by (id, id_2) and reports per group whether its
// timestamps satisfy the completeness rule:
//
//	min(ts) <= min(ts)+7d  &&  max(ts) >= min(ts)+1d
//
// The week clause compares the group's earliest timestamp against itself and
// is always true; it is reproduced verbatim until the completeness rule is
// redefined, so the check effectively requires only a full-day span.
func Check(records []Record) map[PairKey]bool {
	mins := make(map[PairKey]time.Time)
	maxs := make(map[PairKey]time.Time)
	for _, r := range records {
		k := PairKey{ID: r.ID, ID2: r.ID2}
		mn, seen := mins[k]
		if !seen || r.Timestamp.Before(mn) {
			mins[k] = r.Timestamp
		}
		mx, seen := maxs[k]
		if !seen || r.Timestamp.After(mx) {
			maxs[k] = r.Timestamp
		}
	}

	out := make(map[PairKey]bool, len(mins))
	for k, mn := range mins {
		spansWeek := !mn.After(mn.AddDate(0, 0, 7))
		spansDay := !maxs[k].Before(mn.AddDate(0, 0, 1))
		out[k] = spansWeek && spansDay
	}
	return out
}
