package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPositionsCmd(a *app) *cobra.Command {
	var (
		lat, lng, alt float64
		seconds       int
		tz            string
	)

	cmd := &cobra.Command{
		Use:   "positions <satellite>",
		Short: "Predict ground-relative positions for the next seconds",
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

			resp, err := c.GetPositions(cmd.Context(), id, lat, lng, alt, seconds)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%s (NORAD %d): %d position(s)\n",
				resp.Info.SatName, resp.Info.SatID, len(resp.Positions))
			for _, p := range resp.Positions {
				when, err := c.FormatTimestamp(float64(p.Timestamp), tz)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s  lat %9.4f  lng %9.4f  alt %8.2f km  az %6.2f  el %6.2f\n",
					when, p.SatLatitude, p.SatLongitude, p.SatAltitude, p.Azimuth, p.Elevation)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "observer latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "observer longitude in degrees")
	cmd.Flags().Float64Var(&alt, "alt", 0, "observer altitude in meters")
	cmd.Flags().IntVar(&seconds, "seconds", 2, "number of future seconds to predict (1-300)")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone for printed timestamps")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lng")
	return cmd
}
