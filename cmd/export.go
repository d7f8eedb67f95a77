package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/roster-cli/internal/adapters/export/xlsx"
	"github.com/bnema/roster-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.service.Export(cmd.Context(), app.owner)
			if errors.Is(err, domain.ErrEmptyExport) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No characters available to export.")
				return err
			}
			if err != nil {
				return err
			}

			if err := xlsx.WriteFile(out, report); err != nil {
				return fmt.Errorf("export roster: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d characters to %s\n", len(report.Rows), out)
			if err == nil && report.Truncated {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Only the first %d characters were exported.\n", len(report.Rows))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", xlsx.DefaultFileName, "output workbook path")

	return cmd
}
