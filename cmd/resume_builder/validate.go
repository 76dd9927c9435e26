package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate snapshot and theme files against their JSON Schemas",
	Long: `Checks structure against the embedded JSON Schemas, then reports the repairs the store
would apply to the section order (dangling, duplicate or missing references). Repairs are not errors.`,
	RunE: runValidate,
}

var (
	validateSnapshotFile string
	validateThemeFile    string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSnapshotFile, "snapshot", "s", "", "Path to snapshot JSON file")
	validateCmd.Flags().StringVarP(&validateThemeFile, "theme", "t", "", "Path to theme JSON file")
	validateCmd.MarkFlagsOneRequired("snapshot", "theme")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateSnapshotFile != "" {
		if err := schemas.ValidateSnapshotFile(validateSnapshotFile); err != nil {
			return validationFailed(validateSnapshotFile, err)
		}
		_, snap, err := filestore.ReadSnapshotFile(validateSnapshotFile)
		if err != nil {
			return err
		}
		doc := snap.Document.Clone()
		doc.Normalize()
		_, repairs := store.ReconcileOrder(snap.SectionOrder, doc)
		printer().PrintRepairs(repairs)
		fmt.Printf("✅ Validation passed: %s\n", validateSnapshotFile)
	}

	if validateThemeFile != "" {
		data, err := os.ReadFile(validateThemeFile)
		if err != nil {
			return fmt.Errorf("failed to read theme: %w", err)
		}
		if err := schemas.ValidateTheme(data); err != nil {
			return validationFailed(validateThemeFile, err)
		}
		fmt.Printf("✅ Validation passed: %s\n", validateThemeFile)
	}
	return nil
}

func validationFailed(path string, err error) error {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %s\n%s", path, verr.Error())
		return fmt.Errorf("validation failed with %d error(s)", len(verr.Errors))
	}
	return err
}
