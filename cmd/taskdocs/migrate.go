package main

import (
	"github.com/spf13/cobra"

	"github.com/wil-ckaew/taskdocs/internal/database"
)

var migrateTarget int32

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long: `Applies the embedded schema migrations. With --to the schema is
moved to that version instead, running down migrations if needed;
--to 0 drops every table.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		return database.MigrateTo(cmd.Context(), log, cfg.Database.DSN(), migrateTarget)
	},
}

func init() {
	migrateCmd.Flags().Int32Var(&migrateTarget, "to", -1, "target schema version (-1 for latest)")
	rootCmd.AddCommand(migrateCmd)
}
