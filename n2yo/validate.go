package n2yo

import (
	"fmt"
	"math"
	"strings"
)

// Argument validation runs before any cache, rate-limit, or network work.
// The first violated rule wins and is reported as an InvalidParameterError
// naming the parameter, the offending value, and the reason; a request is
// never partially applied.

func errParam(param string, value any, reason string) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}

func validateID(id int) error {
	if id <= 0 {
		return errParam("id", id, "catalog number must be a positive integer")
	}
	return nil
}

func validateObserver(lat, lng, alt float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return errParam("lat", lat, "latitude must be between -90 and 90 degrees")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return errParam("lng", lng, "longitude must be between -180 and 180 degrees")
	}
	if math.IsNaN(alt) || alt < -1000 || alt > 10000 {
		return errParam("alt", alt, "altitude must be between -1000 and 10000 meters")
	}
	return nil
}

func validateSeconds(seconds int) error {
	if seconds < 1 || seconds > 300 {
		return errParam("seconds", seconds, "prediction seconds must be between 1 and 300")
	}
	return nil
}

func validateDays(days int) error {
	if days < 1 || days > 10 {
		return errParam("days", days, "prediction window must be between 1 and 10 days")
	}
	return nil
}

func validateMinVisibility(minVisibility float64) error {
	if math.IsNaN(minVisibility) || minVisibility <= 0 {
		return errParam("minVisibility", minVisibility, "minimum visibility duration must be greater than zero")
	}
	return nil
}

func validateMinElevation(minElevation float64) error {
	if math.IsNaN(minElevation) || minElevation < 0 {
		return errParam("minElevation", minElevation, "minimum elevation must not be negative")
	}
	return nil
}

func validateRadius(radius float64) error {
	if math.IsNaN(radius) || radius < 0 || radius > 90 {
		return errParam("radius", radius, "search radius must be between 0 and 90 degrees")
	}
	return nil
}

func validateCategory(category int) error {
	if category < 0 {
		return errParam("category", category, "category id must not be negative")
	}
	return nil
}

// validateSatName trims and upper-cases a satellite common name so lookups
// are case-insensitive.
func validateSatName(name string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return "", errParam("name", name, "satellite name must not be empty")
	}
	return normalized, nil
}

func validateTimestamp(ts float64) error {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return errParam("timestamp", fmt.Sprintf("%v", ts), "timestamp must be a finite number of epoch seconds")
	}
	return nil
}
