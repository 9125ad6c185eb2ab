package cli

import (
	"github.com/spf13/cobra"

	"examsense/config"
	"examsense/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			return database.AutoMigrate(db)
		},
	}
}
