package n2yo

import (
	"errors"
	"math"
	"testing"
)

func wantParamError(t *testing.T, err error, param string) {
	t.Helper()
	var invalid *InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidParameterError", err)
	}
	if invalid.Param != param {
		t.Errorf("Param = %q, want %q", invalid.Param, param)
	}
}

func TestValidateID(t *testing.T) {
	for _, id := range []int{1, 25544} {
		if err := validateID(id); err != nil {
			t.Errorf("validateID(%d) = %v, want nil", id, err)
		}
	}
	for _, id := range []int{0, -1} {
		wantParamError(t, validateID(id), "id")
	}
}

func TestValidateObserver(t *testing.T) {
	cases := []struct {
		name          string
		lat, lng, alt float64
		wantParam     string
	}{
		{"all valid", 41.702, -76.014, 0, ""},
		{"lat lower bound", -90, 0, 0, ""},
		{"lat upper bound", 90, 0, 0, ""},
		{"lat too high", 91, 0, 0, "lat"},
		{"lat too low", -90.001, 0, 0, "lat"},
		{"lat NaN", math.NaN(), 0, 0, "lat"},
		{"lng bounds", 0, 180, 0, ""},
		{"lng too low", 0, -180.5, 0, "lng"},
		{"lng NaN", 0, math.NaN(), 0, "lng"},
		{"alt lower bound", 0, 0, -1000, ""},
		{"alt upper bound", 0, 0, 10000, ""},
		{"alt too low", 0, 0, -1001, "alt"},
		{"alt too high", 0, 0, 10001, "alt"},
		{"lat checked before lng", 99, 999, 0, "lat"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateObserver(tc.lat, tc.lng, tc.alt)
			if tc.wantParam == "" {
				if err != nil {
					t.Errorf("validateObserver() = %v, want nil", err)
				}
				return
			}
			wantParamError(t, err, tc.wantParam)
		})
	}
}

func TestValidateRanges(t *testing.T) {
	if err := validateSeconds(1); err != nil {
		t.Errorf("validateSeconds(1) = %v, want nil", err)
	}
	if err := validateSeconds(300); err != nil {
		t.Errorf("validateSeconds(300) = %v, want nil", err)
	}
	wantParamError(t, validateSeconds(0), "seconds")
	wantParamError(t, validateSeconds(301), "seconds")

	if err := validateDays(1); err != nil {
		t.Errorf("validateDays(1) = %v, want nil", err)
	}
	if err := validateDays(10); err != nil {
		t.Errorf("validateDays(10) = %v, want nil", err)
	}
	wantParamError(t, validateDays(0), "days")
	wantParamError(t, validateDays(11), "days")

	if err := validateMinVisibility(0.1); err != nil {
		t.Errorf("validateMinVisibility(0.1) = %v, want nil", err)
	}
	wantParamError(t, validateMinVisibility(0), "minVisibility")
	wantParamError(t, validateMinVisibility(-5), "minVisibility")

	if err := validateMinElevation(0); err != nil {
		t.Errorf("validateMinElevation(0) = %v, want nil", err)
	}
	wantParamError(t, validateMinElevation(-0.1), "minElevation")

	if err := validateRadius(0); err != nil {
		t.Errorf("validateRadius(0) = %v, want nil", err)
	}
	if err := validateRadius(90); err != nil {
		t.Errorf("validateRadius(90) = %v, want nil", err)
	}
	wantParamError(t, validateRadius(90.1), "radius")
	wantParamError(t, validateRadius(-1), "radius")

	if err := validateCategory(0); err != nil {
		t.Errorf("validateCategory(0) = %v, want nil", err)
	}
	wantParamError(t, validateCategory(-1), "category")
}

func TestValidateSatName(t *testing.T) {
	got, err := validateSatName("  iss ")
	if err != nil {
		t.Fatalf("validateSatName() error = %v", err)
	}
	if got != "ISS" {
		t.Errorf("normalized name = %q, want %q", got, "ISS")
	}
	if _, err := validateSatName("   "); err == nil {
		t.Error("validateSatName(blank) = nil, want error")
	}
}

func TestValidateTimestamp(t *testing.T) {
	if err := validateTimestamp(1700000000); err != nil {
		t.Errorf("validateTimestamp() = %v, want nil", err)
	}
	for _, ts := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		wantParamError(t, validateTimestamp(ts), "timestamp")
	}
}
