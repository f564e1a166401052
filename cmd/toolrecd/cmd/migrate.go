package cmd

import (
	"github.com/apex/log"
	"github.com/neurmill/toolrec/pkg/config"
	"github.com/neurmill/toolrec/pkg/tooldb"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := tooldb.MustConnectToDB(config.GetConfig())
		if err := tooldb.RunMigrations(db); err != nil {
			return err
		}

		log.Infof("Migrations complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
