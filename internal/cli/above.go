package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/satwatch/geo"
)

func newAboveCmd(a *app) *cobra.Command {
	var (
		lat, lng, alt float64
		radius        float64
		category      int
	)

	cmd := &cobra.Command{
		Use:   "above",
		Short: "List objects currently above an observer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			resp, err := c.GetAbove(cmd.Context(), lat, lng, alt, radius, category)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%d object(s) above (category: %s)\n",
				resp.Info.SatCount, resp.Info.Category)

			// Nearest ground track first.
			type row struct {
				name    string
				id      int
				altKm   float64
				rangeKm float64
			}
			rows := make([]row, 0, len(resp.Above))
			for _, s := range resp.Above {
				rows = append(rows, row{
					name:    s.SatName,
					id:      s.SatID,
					altKm:   s.SatAlt,
					rangeKm: geo.DistanceKm(lat, lng, s.SatLat, s.SatLng),
				})
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].rangeKm < rows[j].rangeKm })

			for _, r := range rows {
				fmt.Fprintf(a.stdout, "%-24s NORAD %-6d alt %8.1f km  ground range %8.1f km\n",
					r.name, r.id, r.altKm, r.rangeKm)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "observer latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "observer longitude in degrees")
	cmd.Flags().Float64Var(&alt, "alt", 0, "observer altitude in meters")
	cmd.Flags().Float64Var(&radius, "radius", 70, "search cone radius in degrees (0-90)")
	cmd.Flags().IntVar(&category, "category", 0, "category id filter (0 = all)")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lng")
	return cmd
}
