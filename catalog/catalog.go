// Package catalog holds the local lookup tables: well-known satellite common
// names mapped to NORAD catalog numbers, and upstream category identifiers
// mapped to display names. Both tables are static and consulted without any
// network access.
package catalog

import (
	"sort"
	"strings"
)

// satellites maps upper-cased common names to NORAD catalog numbers.
var satellites = map[string]int{
	"ISS":           25544,
	"SPACE STATION": 25544,
	"ZARYA":         25544,
	"TIANGONG":      48274,
	"CSS":           48274,
	"HST":           20580,
	"HUBBLE":        20580,
	"NOAA 15":       25338,
	"NOAA 18":       28654,
	"NOAA 19":       33591,
	"GOES 16":       41866,
	"GOES 17":       43226,
	"METOP-B":       38771,
	"METOP-C":       43689,
	"TERRA":         25994,
	"AQUA":          27424,
	"AURA":          28376,
	"LANDSAT 8":     39084,
	"LANDSAT 9":     49260,
	"SENTINEL-1A":   39634,
	"SENTINEL-2A":   40697,
	"SENTINEL-6":    46984,
	"ENVISAT":       27386,
	"ISS (NAUKA)":   49044,
	"AO-7":          7530,
	"AO-91":         43017,
	"SO-50":         27607,
	"FUNCUBE-1":     39444,
}

// categories maps upstream category identifiers to display names.
var categories = map[int]string{
	0:  "All",
	1:  "Brightest",
	2:  "ISS",
	3:  "Weather",
	4:  "NOAA",
	5:  "GOES",
	6:  "Earth resources",
	7:  "Search & rescue",
	8:  "Disaster monitoring",
	9:  "Tracking and Data Relay Satellite System",
	10: "Geostationary",
	11: "Intelsat",
	12: "Gorizont",
	13: "Raduga",
	14: "Molniya",
	15: "Iridium",
	16: "Orbcomm",
	17: "Globalstar",
	18: "Amateur radio",
	19: "Experimental",
	20: "Global Positioning System (GPS) Operational",
	21: "Glonass Operational",
	22: "Galileo",
	23: "Satellite-Based Augmentation System",
	24: "Navy Navigation Satellite System",
	25: "Russian LEO Navigation",
	26: "Space & Earth Science",
	27: "Geodetic",
	28: "Engineering",
	29: "Education",
	30: "Military",
	31: "Radar Calibration",
	32: "CubeSats",
	33: "XM and Sirius",
	34: "TV",
	35: "Beidou Navigation System",
	36: "Yaesu",
	37: "Westford Needles",
	38: "Parus",
	39: "Strela",
	40: "Gonets",
	41: "Tsiklon",
	42: "Tsikada",
	43: "O3B Networks",
	44: "Tselina",
	45: "Celestis",
	46: "IRNSS",
	47: "QZSS",
	48: "Flock",
	49: "Lemur",
	50: "GPS Constellation",
	51: "Glonass Constellation",
	52: "Starlink",
	53: "OneWeb",
	54: "Chinese Space Station",
}

// ResolveSatellite looks up a common name, case-insensitively, and returns
// its NORAD catalog number.
func ResolveSatellite(name string) (int, bool) {
	id, ok := satellites[strings.ToUpper(strings.TrimSpace(name))]
	return id, ok
}

// CategoryName returns the display name for a category identifier.
func CategoryName(id int) (string, bool) {
	name, ok := categories[id]
	return name, ok
}

// Category pairs an upstream category identifier with its display name.
type Category struct {
	ID   int
	Name string
}

// Categories returns every known category sorted by identifier.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for id, name := range categories {
		out = append(out, Category{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
