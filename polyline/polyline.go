package polyline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrMalformedPolyline is returned for coordinate pairs that are not two
// numeric fields.
var ErrMalformedPolyline = errors.New("polyline: malformed coordinate pair")

// PointDistance is a decoded point plus the Euclidean distance from the
// previous point in the sequence. The first point's distance is 0.
type PointDistance struct {
	Point    orb.Point
	Distance float64
}

// Decode parses a "lat,lng;lat,lng;..." string. Step distances are planar
// Euclidean over the raw coordinate values, not great-circle.
func Decode(s string) ([]PointDistance, error) {
	parts := strings.Split(s, ";")
	out := make([]PointDistance, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%q: %w", part, ErrMalformedPolyline)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, ErrMalformedPolyline)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, ErrMalformedPolyline)
		}

		p := orb.Point{lng, lat}
		var d float64
		if len(out) > 0 {
			d = planar.Distance(out[len(out)-1].Point, p)
		}
		out = append(out, PointDistance{Point: p, Distance: d})
	}
	return out, nil
}
