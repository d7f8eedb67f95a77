package cmd

import (
	"fmt"

	rosterrender "github.com/bnema/roster-cli/internal/adapters/render/roster"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show which classes may fill each position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := rosterrender.RenderCatalog(app.service.Catalog())
			if err != nil {
				return fmt.Errorf("render catalog: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
