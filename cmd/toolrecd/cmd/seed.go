package cmd

import (
	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
	"github.com/neurmill/toolrec/pkg/config"
	"github.com/neurmill/toolrec/pkg/seed"
	"github.com/neurmill/toolrec/pkg/tooldb"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Load machines.csv and tools.csv into the database",
	Long: `Replace the machines and tools in the database with machines.csv and tools.csv
from dir (default the current directory). Columns are matched by header name and
blank cells are stored as NULL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		dir, err := homedir.Expand(dir)
		if err != nil {
			return err
		}

		db := tooldb.MustConnectToDB(config.GetConfig())
		if err := tooldb.RunMigrations(db); err != nil {
			return err
		}

		stors := stor.NewGormStors(db)
		machines, tools, err := seed.FromDir(dir, stors.ReferenceStor)
		if err != nil {
			log.Errorf("Seeding %s failed, machines and tools are unchanged", dir)
			return err
		}

		log.Infof("Machines: %d, tools: %d", machines, tools)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
