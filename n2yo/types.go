package n2yo

import "strings"

// Response envelopes follow the upstream contract: an info object describing
// the transaction plus a payload that may be absent and is normalized to
// empty by the client.

// TLEInfo describes the object a TLE lookup resolved.
type TLEInfo struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
}

// TLEResponse carries the raw two-line element set for one object.
type TLEResponse struct {
	Info TLEInfo `json:"info"`
	TLE  string  `json:"tle"`
}

// Lines splits the element set into its two lines. Both are empty when the
// upstream returned no TLE for the object.
func (r *TLEResponse) Lines() (string, string) {
	raw := strings.ReplaceAll(r.TLE, "\r\n", "\n")
	parts := strings.SplitN(raw, "\n", 2)
	if len(parts) < 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// PositionsInfo describes a position-prediction transaction.
type PositionsInfo struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
}

// Position is one predicted ground-relative position sample.
type Position struct {
	SatLatitude  float64 `json:"satlatitude"`
	SatLongitude float64 `json:"satlongitude"`
	SatAltitude  float64 `json:"sataltitude"`
	Azimuth      float64 `json:"azimuth"`
	Elevation    float64 `json:"elevation"`
	RA           float64 `json:"ra"`
	Dec          float64 `json:"dec"`
	Timestamp    int64   `json:"timestamp"`
}

// PositionsResponse carries per-second position predictions.
type PositionsResponse struct {
	Info      PositionsInfo `json:"info"`
	Positions []Position    `json:"positions"`
}

// PassesInfo describes a pass-prediction transaction.
type PassesInfo struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
	PassesCount       int    `json:"passescount"`
}

// VisualPass is one optically visible pass over the observer.
type VisualPass struct {
	StartAz        float64 `json:"startAz"`
	StartAzCompass string  `json:"startAzCompass"`
	StartEl        float64 `json:"startEl"`
	StartUTC       int64   `json:"startUTC"`
	MaxAz          float64 `json:"maxAz"`
	MaxAzCompass   string  `json:"maxAzCompass"`
	MaxEl          float64 `json:"maxEl"`
	MaxUTC         int64   `json:"maxUTC"`
	EndAz          float64 `json:"endAz"`
	EndAzCompass   string  `json:"endAzCompass"`
	EndEl          float64 `json:"endEl"`
	EndUTC         int64   `json:"endUTC"`
	Mag            float64 `json:"mag"`
	Duration       int     `json:"duration"`
}

// VisualPassesResponse carries predicted visual passes.
type VisualPassesResponse struct {
	Info   PassesInfo   `json:"info"`
	Passes []VisualPass `json:"passes"`
}

// RadioPass is one pass above the requested minimum elevation, regardless of
// optical visibility.
type RadioPass struct {
	StartAz        float64 `json:"startAz"`
	StartAzCompass string  `json:"startAzCompass"`
	StartUTC       int64   `json:"startUTC"`
	MaxAz          float64 `json:"maxAz"`
	MaxAzCompass   string  `json:"maxAzCompass"`
	MaxEl          float64 `json:"maxEl"`
	MaxUTC         int64   `json:"maxUTC"`
	EndAz          float64 `json:"endAz"`
	EndAzCompass   string  `json:"endAzCompass"`
	EndUTC         int64   `json:"endUTC"`
}

// RadioPassesResponse carries predicted radio passes.
type RadioPassesResponse struct {
	Info   PassesInfo  `json:"info"`
	Passes []RadioPass `json:"passes"`
}

// AboveInfo describes an objects-overhead transaction.
type AboveInfo struct {
	Category          string `json:"category"`
	TransactionsCount int    `json:"transactionscount"`
	SatCount          int    `json:"satcount"`
}

// AboveSatellite is one object inside the searched cone.
type AboveSatellite struct {
	SatID         int     `json:"satid"`
	SatName       string  `json:"satname"`
	IntDesignator string  `json:"intDesignator"`
	LaunchDate    string  `json:"launchDate"`
	SatLat        float64 `json:"satlat"`
	SatLng        float64 `json:"satlng"`
	SatAlt        float64 `json:"satalt"`
}

// AboveResponse carries the objects currently above an observer.
type AboveResponse struct {
	Info  AboveInfo        `json:"info"`
	Above []AboveSatellite `json:"above"`
}
