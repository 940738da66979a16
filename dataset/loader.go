package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/tollkit/coverage"
	"github.com/theoremus-urban-solutions/tollkit/geodist"
	"github.com/theoremus-urban-solutions/tollkit/toll"
)

// timestampLayouts are tried in order when parsing timestamp columns.
var timestampLayouts = []string{"2006-01-02 15:04:05", time.RFC3339}

// LoadLocations reads a locations CSV with columns id, latitude, longitude.
func LoadLocations(path string) ([]geodist.Location, error) {
	rec, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	id, lat, lon := idx("id"), idx("latitude"), idx("longitude")
	if id < 0 || lat < 0 || lon < 0 {
		return nil, errors.Errorf("%s: missing id/latitude/longitude columns", path)
	}
	out := make([]geodist.Location, 0, len(rec))
	for _, row := range rec {
		la, err := strconv.ParseFloat(row[lat], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: latitude for id %s", path, row[id])
		}
		lo, err := strconv.ParseFloat(row[lon], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: longitude for id %s", path, row[id])
		}
		out = append(out, geodist.Location{ID: row[id], Point: orb.Point{lo, la}})
	}
	return out, nil
}

// LoadDistanceRecords reads an unrolled distance CSV with columns id_start,
// id_end, distance.
func LoadDistanceRecords(path string) ([]geodist.Record, error) {
	rec, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	start, end, dist := idx("id_start"), idx("id_end"), idx("distance")
	if start < 0 || end < 0 || dist < 0 {
		return nil, errors.Errorf("%s: missing id_start/id_end/distance columns", path)
	}
	out := make([]geodist.Record, 0, len(rec))
	for _, row := range rec {
		d, err := strconv.ParseFloat(row[dist], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: distance for %s->%s", path, row[start], row[end])
		}
		out = append(out, geodist.Record{IDStart: row[start], IDEnd: row[end], Distance: d})
	}
	return out, nil
}

// LoadTimestampedPairs reads a CSV with columns id_start, id_end, timestamp
// for time-based pricing.
func LoadTimestampedPairs(path string) ([]toll.TimestampedRecord, error) {
	rec, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	start, end, ts := idx("id_start"), idx("id_end"), idx("timestamp")
	if start < 0 || end < 0 || ts < 0 {
		return nil, errors.Errorf("%s: missing id_start/id_end/timestamp columns", path)
	}
	out := make([]toll.TimestampedRecord, 0, len(rec))
	for _, row := range rec {
		t, err := parseTimestamp(row[ts])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: timestamp for %s->%s", path, row[start], row[end])
		}
		out = append(out, toll.TimestampedRecord{IDStart: row[start], IDEnd: row[end], Timestamp: t})
	}
	return out, nil
}

// LoadCoverageRecords reads a CSV with columns id, id_2, timestamp for the
// coverage check.
func LoadCoverageRecords(path string) ([]coverage.Record, error) {
	rec, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	id, id2, ts := idx("id"), idx("id_2"), idx("timestamp")
	if id < 0 || id2 < 0 || ts < 0 {
		return nil, errors.Errorf("%s: missing id/id_2/timestamp columns", path)
	}
	out := make([]coverage.Record, 0, len(rec))
	for _, row := range rec {
		t, err := parseTimestamp(row[ts])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: timestamp for (%s,%s)", path, row[id], row[id2])
		}
		out = append(out, coverage.Record{ID: row[id], ID2: row[id2], Timestamp: t})
	}
	return out, nil
}

// readCSV loads a CSV file and returns its data rows plus a header-index
// lookup. The lookup returns -1 for absent columns.
func readCSV(path string) ([][]string, func(string) int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()
	rec, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read %s", path)
	}
	if len(rec) == 0 {
		return nil, nil, errors.Errorf("%s: empty dataset", path)
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	return rec[1:], idx, nil
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		t, err = time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
