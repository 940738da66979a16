package toll

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theoremus-urban-solutions/tollkit/geodist"
)

// ErrBadTimeBand is returned when a time band's start does not parse as HH:MM.
var ErrBadTimeBand = errors.New("toll: invalid time band start")

// VehicleRate maps a vehicle type to its toll multiplier.
type VehicleRate struct {
	Type       string  `yaml:"type" json:"type" validate:"required"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier" validate:"gte=0"`
}

// TimeBand is one time-of-day boundary with its rate. Bands are matched in
// declared order: the first band whose start is <= the record's time-of-day
// wins. Reordering the table changes results, so it is a slice, never a map.
type TimeBand struct {
	Start string  `yaml:"start" json:"start" validate:"required"` // HH:MM
	Rate  float64 `yaml:"rate" json:"rate" validate:"gte=0"`
}

// DefaultVehicleRates is the standard per-vehicle-type multiplier table.
var DefaultVehicleRates = []VehicleRate{
	{Type: "car", Multiplier: 1.0},
	{Type: "truck", Multiplier: 1.5},
	{Type: "bus", Multiplier: 1.2},
}

// DefaultTimeBands is the standard time-of-day rate table, in declared
// matching order.
var DefaultTimeBands = []TimeBand{
	{Start: "00:00", Rate: 0.5},
	{Start: "06:00", Rate: 1.0},
	{Start: "12:00", Rate: 1.5},
	{Start: "18:00", Rate: 2.0},
	{Start: "23:59", Rate: 1.0},
}

// Record is a priced (id_start, id_end) row. Rate is NaN when the row's
// IDStart did not resolve against the vehicle rate table.
type Record struct {
	IDStart string  `json:"id_start"`
	IDEnd   string  `json:"id_end"`
	Rate    float64 `json:"toll_rate"`
}

// MarshalJSON renders a NaN rate as null; encoding/json has no NaN literal.
func (r Record) MarshalJSON() ([]byte, error) {
	type row struct {
		IDStart string   `json:"id_start"`
		IDEnd   string   `json:"id_end"`
		Rate    *float64 `json:"toll_rate"`
	}
	out := row{IDStart: r.IDStart, IDEnd: r.IDEnd}
	if !math.IsNaN(r.Rate) {
		rate := r.Rate
		out.Rate = &rate
	}
	return json.Marshal(out)
}

// TimestampedRecord is an input row for time-based pricing.
type TimestampedRecord struct {
	IDStart   string
	IDEnd     string
	Timestamp time.Time
}

// ApplyVehicleRates prices each distance record as distance × multiplier.
// The multiplier is looked up by the record's IDStart against the
// vehicle-type table; rows whose IDStart is not a table key get a NaN rate
// rather than an error. Looking up IDStart (not a vehicle-type column) is the
// established behavior of the toll datasets and is kept as-is.
func ApplyVehicleRates(records []geodist.Record, rates []VehicleRate) []Record {
	multipliers := make(map[string]float64, len(rates))
	for _, vr := range rates {
		multipliers[vr.Type] = vr.Multiplier
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		mult, ok := multipliers[r.IDStart]
		if !ok {
			mult = math.NaN()
		}
		out = append(out, Record{IDStart: r.IDStart, IDEnd: r.IDEnd, Rate: r.Distance * mult})
	}
	return out
}

// ApplyTimeBands selects a rate for each record from the band table: the
// first band (in declared order) whose start is <= the record's time-of-day.
// Records matching no band get rate 1.0. With the default table the 00:00
// band matches every time-of-day first; that is intentional table behavior,
// so the table order must not be re-sorted.
func ApplyTimeBands(records []TimestampedRecord, bands []TimeBand) ([]Record, error) {
	starts := make([]int, len(bands))
	for i, b := range bands {
		m, err := minuteOfDay(b.Start)
		if err != nil {
			return nil, err
		}
		starts[i] = m
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		minute := r.Timestamp.Hour()*60 + r.Timestamp.Minute()
		rate := 1.0
		for i, b := range bands {
			if minute >= starts[i] {
				rate = b.Rate
				break
			}
		}
		out = append(out, Record{IDStart: r.IDStart, IDEnd: r.IDEnd, Rate: rate})
	}
	return out, nil
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", hhmm, ErrBadTimeBand)
	}
	return t.Hour()*60 + t.Minute(), nil
}
