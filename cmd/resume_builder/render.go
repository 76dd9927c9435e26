package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume snapshot through a template",
	Long: `Renders a {document, sectionOrder} snapshot with the modern or classic template.
Sections appear in the snapshot's section order; empty sections are omitted.`,
	RunE: runRender,
}

var (
	renderSnapshotFile string
	renderVariant      string
	renderThemeFile    string
	renderFormat       string
	renderTemplateFile string
	renderOutputFile   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderSnapshotFile, "snapshot", "s", "", "Path to snapshot JSON file (required)")
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "Template variant: modern or classic (unknown names fall back to modern)")
	renderCmd.Flags().StringVarP(&renderThemeFile, "theme", "t", "", "Path to theme JSON file")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", export.FormatHTML, "Output format: "+strings.Join(export.Formats(), ", "))
	renderCmd.Flags().StringVar(&renderTemplateFile, "template", "", "Custom HTML template defining a \"body\" block (html format only)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Output file (default stdout)")

	_ = renderCmd.MarkFlagRequired("snapshot")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	format := strings.ToLower(renderFormat)
	if !slices.Contains(export.Formats(), format) {
		return fmt.Errorf("unsupported format %q (available: %s)", renderFormat, strings.Join(export.Formats(), ", "))
	}
	variant := cfg.Variant
	if cmd.Flags().Changed("variant") {
		variant = renderVariant
	}
	templatePath := cfg.Template
	if cmd.Flags().Changed("template") {
		templatePath = renderTemplateFile
	}

	theme, err := loadTheme(renderThemeFile, cfg.Theme)
	if err != nil {
		return err
	}
	s, err := openStore(renderSnapshotFile)
	if err != nil {
		return err
	}

	tree := compositor.RenderSnapshot(s.Snapshot(), theme, variant)
	if cfg.Verbose {
		printer().PrintTree(tree)
	}

	var data []byte
	switch {
	case format == export.FormatPDF:
		chrome := export.NewChromePrinter(cfg.Verbose)
		chrome.Timeout = time.Duration(cfg.PDFTimeoutSeconds) * time.Second
		data, err = export.PDF(context.Background(), tree, chrome)
	case format == export.FormatHTML && templatePath != "":
		var html string
		html, err = rendering.RenderHTMLWithTemplate(tree, templatePath)
		data = []byte(html)
	default:
		data, err = export.Render(tree, format)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	return writeOutput(renderOutputFile, data)
}
