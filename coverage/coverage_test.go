package coverage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tollkit/coverage"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	require.NoError(t, err)
	return parsed
}

func TestCheck(t *testing.T) {
	records := []coverage.Record{
		// Pair (1, a): spans two days.
		{ID: "1", ID2: "a", Timestamp: ts(t, "2023-10-02 08:00:00")},
		{ID: "1", ID2: "a", Timestamp: ts(t, "2023-10-04 09:00:00")},
		// Pair (1, b): spans only two hours.
		{ID: "1", ID2: "b", Timestamp: ts(t, "2023-10-02 08:00:00")},
		{ID: "1", ID2: "b", Timestamp: ts(t, "2023-10-02 10:00:00")},
		// Pair (2, a): exactly one day, boundary inclusive.
		{ID: "2", ID2: "a", Timestamp: ts(t, "2023-10-02 08:00:00")},
		{ID: "2", ID2: "a", Timestamp: ts(t, "2023-10-03 08:00:00")},
	}

	got := coverage.Check(records)
	require.Len(t, got, 3)

	assert.True(t, got[coverage.PairKey{ID: "1", ID2: "a"}])
	assert.False(t, got[coverage.PairKey{ID: "1", ID2: "b"}])
	assert.True(t, got[coverage.PairKey{ID: "2", ID2: "a"}], "max == min+1d satisfies the rule")
}

func TestCheckSingleObservation(t *testing.T) {
	got := coverage.Check([]coverage.Record{
		{ID: "1", ID2: "a", Timestamp: ts(t, "2023-10-02 08:00:00")},
	})
	assert.False(t, got[coverage.PairKey{ID: "1", ID2: "a"}], "min == max cannot span a day")
}

func TestCheckEmpty(t *testing.T) {
	assert.Empty(t, coverage.Check(nil))
}
