package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the roster with class and position counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := app.service.ListCharacters(cmd.Context(), app.owner)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			rendered, err := app.rosterRenderer(view)
			if err != nil {
				return fmt.Errorf("render roster: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the roster as JSON")

	return cmd
}
