package formatter

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/theoremus-urban-solutions/tollkit/geodist"
	"github.com/theoremus-urban-solutions/tollkit/polyline"
	"github.com/theoremus-urban-solutions/tollkit/toll"
)

// BuildDistanceCSV renders unrolled distance records
func (rb *resultBuilder) BuildDistanceCSV(records []geodist.Record) []byte {
	rows := [][]string{{"id_start", "id_end", "distance"}}
	for _, r := range records {
		rows = append(rows, []string{r.IDStart, r.IDEnd, formatFloat(r.Distance)})
	}
	return writeCSV(rows)
}

// BuildMeanCSV renders threshold-filter results
func (rb *resultBuilder) BuildMeanCSV(records []geodist.MeanDistance) []byte {
	rows := [][]string{{"id_start", "distance"}}
	for _, r := range records {
		rows = append(rows, []string{r.IDStart, formatFloat(r.Mean)})
	}
	return writeCSV(rows)
}

// BuildTollCSV renders priced records
func (rb *resultBuilder) BuildTollCSV(records []toll.Record) []byte {
	rows := [][]string{{"id_start", "id_end", "toll_rate"}}
	for _, r := range records {
		rows = append(rows, []string{r.IDStart, r.IDEnd, formatFloat(r.Rate)})
	}
	return writeCSV(rows)
}

// BuildPolylineCSV renders decoded polyline points
func (rb *resultBuilder) BuildPolylineCSV(points []polyline.PointDistance) []byte {
	rows := [][]string{{"latitude", "longitude", "distance"}}
	for _, p := range points {
		rows = append(rows, []string{
			formatFloat(p.Point.Lat()),
			formatFloat(p.Point.Lon()),
			formatFloat(p.Distance),
		})
	}
	return writeCSV(rows)
}

// BuildCoverageCSV renders coverage rows
func (rb *resultBuilder) BuildCoverageCSV(rows []CoverageRow) []byte {
	out := [][]string{{"id", "id_2", "complete"}}
	for _, r := range rows {
		out = append(out, []string{r.ID, r.ID2, strconv.FormatBool(r.Complete)})
	}
	return writeCSV(out)
}

func writeCSV(rows [][]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.WriteAll(rows)
	w.Flush()
	return buf.Bytes()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
