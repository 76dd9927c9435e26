// Package main provides the resume_builder CLI: rendering, reordering and
// exporting resume snapshots, and serving the editing API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder section-order engine",
	Long: `Resume Builder keeps a resume document and its user-controlled section order in sync,
renders it through the modern and classic templates, and exports HTML, text, JSON, LaTeX and PDF.

Configuration can be loaded from a JSON or YAML file using --config. Command-line flags override config file values.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
