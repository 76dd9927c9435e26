package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every variant and format into an output directory",
	Long: `Renders the snapshot through each requested variant and writes one file per variant and format,
named resume-<variant>.<ext>. Variants render concurrently. --pdf adds PDF output via headless Chrome.`,
	RunE: runExport,
}

var (
	exportSnapshotFile string
	exportThemeFile    string
	exportVariants     string
	exportFormats      string
	exportOutDir       string
	exportPDF          bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportSnapshotFile, "snapshot", "s", "", "Path to snapshot JSON file (required)")
	exportCmd.Flags().StringVarP(&exportThemeFile, "theme", "t", "", "Path to theme JSON file")
	exportCmd.Flags().StringVar(&exportVariants, "variants", "modern,classic", "Comma separated variants")
	exportCmd.Flags().StringVar(&exportFormats, "formats", "html,text", "Comma separated formats (html, text, json, latex)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Output directory (default from config, \"out\")")
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "Also export PDF (requires Chrome/Chromium)")

	_ = exportCmd.MarkFlagRequired("snapshot")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	formats := export.ParseList(exportFormats)
	for _, f := range formats {
		if !slices.Contains(export.Formats(), f) {
			return fmt.Errorf("unsupported format %q (available: %s)", f, strings.Join(export.Formats(), ", "))
		}
	}
	pdf := cfg.EnablePDF
	if cmd.Flags().Changed("pdf") {
		pdf = exportPDF
	}
	if pdf && !slices.Contains(formats, export.FormatPDF) {
		formats = append(formats, export.FormatPDF)
	}
	outDir := cfg.OutputDir
	if cmd.Flags().Changed("out-dir") {
		outDir = exportOutDir
	}

	theme, err := loadTheme(exportThemeFile, cfg.Theme)
	if err != nil {
		return err
	}
	s, err := openStore(exportSnapshotFile)
	if err != nil {
		return err
	}

	req := export.Request{
		Snapshot: s.Snapshot(),
		Theme:    theme,
		Variants: export.ParseList(exportVariants),
		Formats:  formats,
	}
	timeout := 2 * time.Minute
	if slices.Contains(formats, export.FormatPDF) {
		chrome := export.NewChromePrinter(cfg.Verbose)
		chrome.Timeout = time.Duration(cfg.PDFTimeoutSeconds) * time.Second
		req.Printer = chrome
		timeout += time.Duration(len(req.Variants)) * chrome.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	artifacts, err := export.RenderVariants(ctx, req)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	paths, err := export.WriteArtifacts(outDir, artifacts)
	if err != nil {
		return err
	}

	printer().PrintArtifacts(artifacts, paths)
	return nil
}
