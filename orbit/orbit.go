// Package orbit computes satellite subpoints locally from two-line element
// sets using SGP4 propagation. It complements the remote position endpoint:
// once a TLE has been fetched, the current ground track can be derived
// without further network calls.
package orbit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// ErrBadTLE is returned when the element set lines are structurally invalid.
var ErrBadTLE = errors.New("orbit: invalid TLE")

// Subpoint is the geodetic point directly beneath a satellite at an instant.
type Subpoint struct {
	Latitude   float64 // degrees, north positive
	Longitude  float64 // degrees, east positive
	AltitudeKm float64
	Time       time.Time
}

// SubpointFromTLE propagates the element set to the given instant and
// returns the geodetic subpoint.
func SubpointFromTLE(line1, line2 string, at time.Time) (Subpoint, error) {
	if err := checkLines(line1, line2); err != nil {
		return Subpoint{}, err
	}

	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	altKm, _, latLng := satellite.ECIToLLA(pos, gmst)
	deg := satellite.LatLongDeg(latLng)

	return Subpoint{
		Latitude:   deg.Latitude,
		Longitude:  deg.Longitude,
		AltitudeKm: altKm,
		Time:       at,
	}, nil
}

func checkLines(line1, line2 string) error {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)
	if len(line1) < 69 || !strings.HasPrefix(line1, "1 ") {
		return fmt.Errorf("%w: line 1 malformed", ErrBadTLE)
	}
	if len(line2) < 69 || !strings.HasPrefix(line2, "2 ") {
		return fmt.Errorf("%w: line 2 malformed", ErrBadTLE)
	}
	return nil
}
