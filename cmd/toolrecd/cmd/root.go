/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/neurmill/toolrec/pkg/config"
	"github.com/neurmill/toolrec/pkg/extract"
	"github.com/neurmill/toolrec/pkg/intake"
	"github.com/neurmill/toolrec/pkg/recommend"
	"github.com/neurmill/toolrec/pkg/tooldb"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	dotenvFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "toolrecd",
	Short: "Run the tool recommendation API server",
	Long: `Run the tool recommendation API server. CAD files are uploaded, their features
extracted, and tools recommended for a machine from the tool table.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		c := config.GetConfig()

		db := tooldb.MustConnectToDB(c)
		if err := tooldb.RunMigrations(db); err != nil {
			log.Fatalf("Unable to run migrations: %s", err)
		}

		extractor, err := extract.FromConfig(c)
		if err != nil {
			log.Fatalf("Unable to create feature extractor: %s", err)
		}

		uploadDir := intake.NewUploadDir(c.GetPathKeyWithDefault("UPLOAD_DIR", "./uploads"))
		log.Infof("Upload Dir: %s", uploadDir.Root())
		log.Infof("Feature extractor: %s", extractor.Name())

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())
		e.Use(middleware.BodyLimit("50M"))

		setupRoutes(e, RouteOpts{
			stors:     stor.NewGormStors(db),
			uploadDir: uploadDir,
			extractor: extractor,
			ranker:    recommend.NewFirstMatchRanker(),
			ping:      func() error { return tooldb.Ping(db) },
			logLevel:  c.GetKeyWithDefault("LOG_LEVEL", "info"),
			logDir:    c.GetPathKeyWithDefault("TOOLREC_LOG_DIR", "./logs"),
		})

		port := c.GetKeyWithDefault("TOOLREC_PORT", "8080")
		log.Infof("Listening on port %s", port)
		if err := e.Start(":" + port); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// loadConfig picks the config source from the flags. A --config file is read with viper,
// otherwise keys come from the environment, optionally loaded from a .env file.
func loadConfig() error {
	var c config.Configer
	switch {
	case cfgFile != "":
		c = config.NewViperConfig(cfgFile)
	case dotenvFile != "":
		c = config.NewDotenvConfig(dotenvFile)
	default:
		c = config.GetConfig()
	}

	if err := c.Load(); err != nil {
		return err
	}

	config.SetConfig(c)

	level := c.GetKeyWithDefault("LOG_LEVEL", "info")
	for _, ctx := range clog.Contexts() {
		if err := clog.SetLevelFromString(ctx, level); err != nil {
			return err
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&dotenvFile, "env-file", "", ".env file to load (default $TOOLREC_DOTENV_PATH)")
}
