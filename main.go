package main

import (
	"fmt"
	"os"

	"devplatform/config"
	"devplatform/dao/migrate"
	"devplatform/dao/query"
	"devplatform/logutils"
	"devplatform/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "devplatform",
	Short: "Project management admin API",
	Long:  `devplatform serves the JSON API behind the projects, archive, processes and database browser pages.`,
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := setup(); err != nil {
			return err
		}
		defer closeDB()
		return migrate.Run(query.DB)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default ./etc/config.yaml or $DEVPLATFORM_CONFIG)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// setup loads configuration, configures logging and opens the database.
func setup() error {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config.SetConfig(cfg)
	}
	cfg := config.GetConfig()
	if err := logutils.Configure(cfg.LogOptions()); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	if err := query.InitDB(); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	query.SetDefault(query.DB)
	return nil
}

func closeDB() {
	if err := query.Close(query.DB); err != nil {
		logutils.Log.WithError(err).Warn("close database")
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer closeDB()

	cfg := config.GetConfig()
	if cfg.Database.AutoMigrate {
		if err := migrate.Run(query.DB); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.Server.Mode)
	r := service.NewRouter(query.Q, cfg.Server.CORSOrigin)
	logutils.Log.WithField("addr", cfg.Server.Addr).Info("devplatform listening")
	return r.Run(cfg.Server.Addr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "err:", err)
		os.Exit(1)
	}
}
