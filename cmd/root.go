package cmd

import "github.com/spf13/cobra"

// skipWireAnnotation marks commands that run without a store.
const skipWireAnnotation = "roster/skip-wire"

func Execute() error {
	rootCmd, app := newRootCmd()
	defer app.close()

	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	app := &app{}
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "roster",
		Short:         "Roster CLI: validate and store raid characters",
		Long:          "roster validates characters against class, position and capacity rules, ingests batches of character records, and lists or exports each owner's roster.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, skip := cmd.Annotations[skipWireAnnotation]; skip {
				return nil
			}
			return app.wire(*flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.owner, "owner", "", "roster owner (defaults to the configured owner or $USER)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCatalogCmd(app),
		newAddCmd(app),
		newIngestCmd(app),
		newListCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
	)

	return rootCmd, app
}
