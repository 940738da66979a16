package formatter

import (
	"encoding/json"
	"sort"

	"github.com/theoremus-urban-solutions/tollkit/coverage"
)

type resultBuilder struct{}

func newResultBuilder() *resultBuilder { return &resultBuilder{} }

// NewResultBuilder creates a builder for rendering transformation results
func NewResultBuilder() *resultBuilder {
	return newResultBuilder()
}

// BuildJSON serializes a result set to JSON
func (rb *resultBuilder) BuildJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

// CoverageRow is one coverage result flattened for output.
type CoverageRow struct {
	ID       string `json:"id"`
	ID2      string `json:"id_2"`
	Complete bool   `json:"complete"`
}

// CoverageRows flattens a coverage result map into rows sorted by (id, id_2).
func CoverageRows(results map[coverage.PairKey]bool) []CoverageRow {
	rows := make([]CoverageRow, 0, len(results))
	for k, ok := range results {
		rows = append(rows, CoverageRow{ID: k.ID, ID2: k.ID2, Complete: ok})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ID != rows[j].ID {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].ID2 < rows[j].ID2
	})
	return rows
}
