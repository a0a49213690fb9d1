package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVisualPassesCmd(a *app) *cobra.Command {
	var (
		lat, lng, alt float64
		days          int
		minVisibility float64
		tz            string
	)

	cmd := &cobra.Command{
		Use:   "visualpasses <satellite>",
		Short: "Predict optically visible passes over an observer",
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

			resp, err := c.GetVisualPasses(cmd.Context(), id, lat, lng, alt, days, minVisibility)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%s (NORAD %d): %d visual pass(es) in the next %d day(s)\n",
				resp.Info.SatName, resp.Info.SatID, resp.Info.PassesCount, days)
			for _, p := range resp.Passes {
				start, err := c.FormatTimestamp(float64(p.StartUTC), tz)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s  max el %5.1f  mag %5.1f  duration %ds  %s->%s\n",
					start, p.MaxEl, p.Mag, p.Duration, p.StartAzCompass, p.EndAzCompass)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "observer latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "observer longitude in degrees")
	cmd.Flags().Float64Var(&alt, "alt", 0, "observer altitude in meters")
	cmd.Flags().IntVar(&days, "days", 10, "prediction window in days (1-10)")
	cmd.Flags().Float64Var(&minVisibility, "min-visibility", 300, "minimum visible duration in seconds")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone for printed timestamps")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lng")
	return cmd
}

func newRadioPassesCmd(a *app) *cobra.Command {
	var (
		lat, lng, alt float64
		days          int
		minElevation  float64
		tz            string
	)

	cmd := &cobra.Command{
		Use:   "radiopasses <satellite>",
		Short: "Predict passes above a minimum elevation",
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

			resp, err := c.GetRadioPasses(cmd.Context(), id, lat, lng, alt, days, minElevation)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%s (NORAD %d): %d radio pass(es) in the next %d day(s)\n",
				resp.Info.SatName, resp.Info.SatID, resp.Info.PassesCount, days)
			for _, p := range resp.Passes {
				start, err := c.FormatTimestamp(float64(p.StartUTC), tz)
				if err != nil {
					return err
				}
				end, err := c.FormatTimestamp(float64(p.EndUTC), tz)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s -> %s  max el %5.1f  %s->%s\n",
					start, end, p.MaxEl, p.StartAzCompass, p.EndAzCompass)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "observer latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "observer longitude in degrees")
	cmd.Flags().Float64Var(&alt, "alt", 0, "observer altitude in meters")
	cmd.Flags().IntVar(&days, "days", 10, "prediction window in days (1-10)")
	cmd.Flags().Float64Var(&minElevation, "min-elevation", 10, "minimum max-elevation in degrees")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone for printed timestamps")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lng")
	return cmd
}
