package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/satwatch/orbit"
)

func newTLECmd(a *app) *cobra.Command {
	var (
		propagate bool
		tz        string
	)

	cmd := &cobra.Command{
		Use:   "tle <satellite>",
		Short: "Fetch the two-line element set for a satellite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSat(args[0])
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			resp, err := c.GetTLE(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%s (NORAD %d)\n", resp.Info.SatName, resp.Info.SatID)
			l1, l2 := resp.Lines()
			if l1 == "" {
				fmt.Fprintln(a.stdout, "no TLE available for this object")
				return nil
			}
			fmt.Fprintln(a.stdout, l1)
			fmt.Fprintln(a.stdout, l2)

			if propagate {
				now := time.Now().UTC()
				sp, err := orbit.SubpointFromTLE(l1, l2, now)
				if err != nil {
					return err
				}
				when, err := c.FormatTimestamp(float64(now.Unix()), tz)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "subpoint at %s: lat %.4f lng %.4f alt %.1f km\n",
					when, sp.Latitude, sp.Longitude, sp.AltitudeKm)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&propagate, "propagate", false, "compute the current subpoint locally from the fetched TLE")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone for printed timestamps")
	return cmd
}
