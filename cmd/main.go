package main

import (
	"context"
	"fmt"
	"os"

	"go-doctors-portal/cmd/bootstrap"
	"go-doctors-portal/config"
	"go-doctors-portal/internal/infrastructure/cache"
	"go-doctors-portal/internal/infrastructure/database"
	"go-doctors-portal/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "doctors-portal",
		Short:         "Doctors portal booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", ".env", "path to a dotenv config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(configFile)
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down]",
			Short:     "Apply or roll back database migrations",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(configFile, database.MigrationDirection(args[0]))
			},
		},
	)

	return root
}

func load(configFile string) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfigFile(configFile)
	if err != nil {
		logrus.Errorf("Failed to load config: %v", err)
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, bootstrap.NewLogger(cfg.App), nil
}

func serve(configFile string) error {
	cfg, log, err := load(configFile)
	if err != nil {
		return err
	}

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Errorf("Failed to initialize application: %v", err)
		return err
	}

	if err := app.Run(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func migrate(configFile string, direction database.MigrationDirection) error {
	cfg, log, err := load(configFile)
	if err != nil {
		return err
	}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		log.Errorf("Failed to connect to database: %v", err)
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.RunMigrations(db, direction, log); err != nil {
		log.Errorf("Migration %s failed: %v", direction, err)
		return err
	}

	// Seed migrations change the catalog; drop any cached copy.
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		log.Warnf("Skipping catalog cache invalidation: %v", err)
		return nil
	}
	if redisClient != nil {
		defer redisClient.Close()
		service.NewCatalogCache(redisClient, cfg.Cache.ServiceTTL, log).Invalidate(context.Background())
	}
	return nil
}
