package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/spf13/cobra"
)

var errRecordsRejected = errors.New("some records were rejected")

func newIngestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [file|-]",
		Short: "Validate and store a batch of character records",
		Long:  "ingest reads blank-line separated blocks of Name/Class/Position lines from a file or stdin. Valid records are stored even when others in the batch are rejected.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openIngestInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			result, ingestErr := app.service.Ingest(cmd.Context(), app.owner, input)
			if err := writeIngestResult(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if ingestErr != nil {
				return ingestErr
			}
			if len(result.Rejected) > 0 {
				return fmt.Errorf("%w: %d rejected", errRecordsRejected, len(result.Rejected))
			}
			return nil
		},
	}
}

func openIngestInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open roster input: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

func writeIngestResult(w io.Writer, result application.IngestResult) error {
	if _, err := fmt.Fprintf(w, "Accepted %d records.\n", result.AcceptedCount()); err != nil {
		return err
	}

	for _, rejected := range result.Rejected {
		for _, message := range rejected.Errors.Messages() {
			if _, err := fmt.Fprintf(w, "line %d: %s\n", rejected.Line, message); err != nil {
				return err
			}
		}
	}
	return nil
}
