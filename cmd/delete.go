package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/roster-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a character by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid character id %q", args[0])
			}

			if err := app.service.DeleteCharacter(cmd.Context(), app.owner, domain.CharacterID(id)); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted character %d\n", id)
			return err
		},
	}
}
