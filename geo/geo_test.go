package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolKm                  float64
	}{
		{"same point", 41.702, -76.014, 41.702, -76.014, 0, 0.001},
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 343.5, 2},
		{"equator quarter turn", 0, 0, 0, 90, EarthRadiusKm * math.Pi / 2, 1},
		{"antipodal", 0, 0, 0, 180, EarthRadiusKm * math.Pi, 1},
		{"pole to pole", 90, 0, -90, 0, EarthRadiusKm * math.Pi, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.want) > tc.tolKm {
				t.Errorf("DistanceKm() = %v, want %v (+/- %v)", got, tc.want, tc.tolKm)
			}
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := DistanceKm(35.6762, 139.6503, -33.8688, 151.2093)
	b := DistanceKm(-33.8688, 151.2093, 35.6762, 139.6503)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}
