package toll_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tollkit/geodist"
	"github.com/theoremus-urban-solutions/tollkit/toll"
)

func TestApplyVehicleRates(t *testing.T) {
	records := []geodist.Record{
		{IDStart: "car", IDEnd: "x", Distance: 10},
		{IDStart: "truck", IDEnd: "x", Distance: 10},
		{IDStart: "bus", IDEnd: "x", Distance: 10},
		{IDStart: "1001400", IDEnd: "x", Distance: 10},
	}
	priced := toll.ApplyVehicleRates(records, toll.DefaultVehicleRates)
	require.Len(t, priced, 4)

	assert.Equal(t, 10.0, priced[0].Rate)
	assert.Equal(t, 15.0, priced[1].Rate)
	assert.Equal(t, 12.0, priced[2].Rate)
	assert.True(t, math.IsNaN(priced[3].Rate), "unknown id_start carries a NaN rate")
}

func TestRecordMarshalJSON(t *testing.T) {
	b, err := json.Marshal(toll.Record{IDStart: "1", IDEnd: "2", Rate: math.NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id_start":"1","id_end":"2","toll_rate":null}`, string(b))

	b, err = json.Marshal(toll.Record{IDStart: "1", IDEnd: "2", Rate: 12.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id_start":"1","id_end":"2","toll_rate":12.5}`, string(b))
}

func TestApplyTimeBands(t *testing.T) {
	at := func(hhmm string) time.Time {
		ts, err := time.Parse("2006-01-02 15:04", "2023-10-03 "+hhmm)
		require.NoError(t, err)
		return ts
	}

	t.Run("default table always matches the 00:00 band first", func(t *testing.T) {
		// Declared order is significant: every time-of-day is >= 00:00, so
		// the first band wins regardless of hour.
		for _, hhmm := range []string{"00:00", "05:59", "12:30", "23:59"} {
			priced, err := toll.ApplyTimeBands(
				[]toll.TimestampedRecord{{IDStart: "1", IDEnd: "2", Timestamp: at(hhmm)}},
				toll.DefaultTimeBands)
			require.NoError(t, err)
			require.Len(t, priced, 1)
			assert.Equal(t, 0.5, priced[0].Rate, "time %s", hhmm)
		}
	})

	t.Run("declared order decides, not threshold magnitude", func(t *testing.T) {
		bands := []toll.TimeBand{
			{Start: "18:00", Rate: 2.0},
			{Start: "06:00", Rate: 1.0},
			{Start: "00:00", Rate: 0.5},
		}
		tests := []struct {
			hhmm string
			want float64
		}{
			{"19:00", 2.0},
			{"07:00", 1.0},
			{"03:00", 0.5},
		}
		for _, tt := range tests {
			priced, err := toll.ApplyTimeBands(
				[]toll.TimestampedRecord{{IDStart: "1", IDEnd: "2", Timestamp: at(tt.hhmm)}}, bands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, priced[0].Rate, "time %s", tt.hhmm)
		}
	})

	t.Run("no matching band defaults to 1.0", func(t *testing.T) {
		bands := []toll.TimeBand{{Start: "18:00", Rate: 2.0}}
		priced, err := toll.ApplyTimeBands(
			[]toll.TimestampedRecord{{IDStart: "1", IDEnd: "2", Timestamp: at("09:00")}}, bands)
		require.NoError(t, err)
		assert.Equal(t, 1.0, priced[0].Rate)
	})

	t.Run("invalid band start", func(t *testing.T) {
		_, err := toll.ApplyTimeBands(nil, []toll.TimeBand{{Start: "25:99", Rate: 1}})
		require.ErrorIs(t, err, toll.ErrBadTimeBand)
	})
}
