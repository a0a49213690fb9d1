package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/satwatch/catalog"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category ids accepted by the above command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range catalog.Categories() {
				fmt.Fprintf(a.stdout, "%3d  %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}
