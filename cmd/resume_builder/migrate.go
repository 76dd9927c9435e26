package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply the embedded PostgreSQL migrations to DATABASE_URL or --db-url and report the schema version.`,
	RunE:  runMigrate,
}

var migrateDBURL string

func init() {
	migrateCmd.Flags().StringVar(&migrateDBURL, "db-url", "", "PostgreSQL connection URL (overrides DATABASE_URL)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = migrateDBURL
	}
	if cfg.DatabaseURL == "" {
		return errors.New("no database configured: set DATABASE_URL or --db-url")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	version, err := database.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Database schema at version %d\n", version)
	return nil
}
