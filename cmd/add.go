package cmd

import (
	"fmt"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	var name, class, position string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one character to the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := app.service.Catalog()

			parsedClass, err := catalog.ParseClass(class)
			if err != nil {
				return err
			}
			role, err := catalog.ParseRole(position)
			if err != nil {
				return err
			}

			character, err := app.service.AddCharacter(cmd.Context(), app.owner, application.AddCharacterCommand{
				Name:  name,
				Class: parsedClass,
				Role:  role,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %d)\n", character, character.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "character name")
	cmd.Flags().StringVar(&class, "class", "", "character class")
	cmd.Flags().StringVar(&position, "position", "", "raid position")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}
