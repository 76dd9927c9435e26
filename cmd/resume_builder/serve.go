package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the resume store, drag sessions and rendering over REST.
Snapshots persist to --data-file or, with DATABASE_URL / --db-url, to PostgreSQL.`,
	RunE: runServe,
}

var (
	servePort     int
	serveDataFile string
	serveDBURL    string
	serveResumeID string
	servePDF      bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataFile, "data-file", "", "JSON file snapshots are stored in")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (overrides DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveResumeID, "resume-id", "", "UUID of the resume to edit")
	serveCmd.Flags().BoolVar(&servePDF, "pdf", false, "Enable PDF export via headless Chrome")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("data-file") {
		cfg.DataFile, cfg.DatabaseURL = serveDataFile, ""
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL, cfg.DataFile = serveDBURL, ""
	}
	if cmd.Flags().Changed("resume-id") {
		cfg.ResumeID = serveResumeID
	}
	if cmd.Flags().Changed("pdf") {
		cfg.EnablePDF = servePDF
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps := server.Deps{Store: store.New(store.WithLogger(log.Default()))}

	switch {
	case cfg.DatabaseURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		deps.Repository = database
		log.Printf("Persisting snapshots to PostgreSQL")
	case cfg.DataFile != "":
		deps.Repository = filestore.New(cfg.DataFile)
		log.Printf("Persisting snapshots to %s", cfg.DataFile)
	default:
		log.Printf("No data file or database configured; changes are kept in memory only")
	}

	pdfTimeout := time.Duration(cfg.PDFTimeoutSeconds) * time.Second
	if cfg.EnablePDF {
		chrome := export.NewChromePrinter(cfg.Verbose)
		chrome.Timeout = pdfTimeout
		deps.Printer = chrome
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		ResumeID:   cfg.ResumeUUID(),
		Variant:    cfg.Variant,
		Theme:      cfg.Theme,
		PDFTimeout: pdfTimeout,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
