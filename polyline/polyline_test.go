package polyline_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tollkit/polyline"
)

func TestDecode(t *testing.T) {
	t.Run("3-4-5 step distance", func(t *testing.T) {
		points, err := polyline.Decode("0,0;3,4")
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, 0.0, points[0].Distance)
		assert.Equal(t, 5.0, points[1].Distance)
	})

	t.Run("lat,lng order maps onto the point", func(t *testing.T) {
		points, err := polyline.Decode("28.7041,77.1025")
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, orb.Point{77.1025, 28.7041}, points[0].Point)
		assert.Equal(t, 0.0, points[0].Distance)
	})

	t.Run("distances are per-step, not cumulative", func(t *testing.T) {
		points, err := polyline.Decode("0,0;0,1;0,3")
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, []float64{0, 1, 2}, []float64{points[0].Distance, points[1].Distance, points[2].Distance})
	})

	t.Run("tolerates spaces around numbers", func(t *testing.T) {
		points, err := polyline.Decode("1.5, 2.5; 3.5, 4.5")
		require.NoError(t, err)
		assert.Len(t, points, 2)
	})
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric", "a,b"},
		{"missing longitude", "1;2,3"},
		{"too many fields", "1,2,3"},
		{"empty string", ""},
		{"trailing separator", "1,2;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := polyline.Decode(tt.input)
			require.ErrorIs(t, err, polyline.ErrMalformedPolyline)
		})
	}
}
