package cli

import (
	"fmt"
	"strconv"

	"github.com/signalsfoundry/satwatch/catalog"
)

// resolveSat interprets a satellite selector argument: a NORAD catalog number
// or a common name from the local table.
func resolveSat(arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("satellite number must be positive, got %d", id)
		}
		return id, nil
	}
	if id, ok := catalog.ResolveSatellite(arg); ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown satellite %q: use a NORAD catalog number or a known common name", arg)
}
