package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write the starter resume snapshot to a file",
	RunE:  runNew,
}

var (
	newOutputFile string
	newForce      bool
)

func init() {
	newCmd.Flags().StringVarP(&newOutputFile, "out", "o", "resume.json", "Snapshot file to create")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(newOutputFile); err == nil && !newForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", newOutputFile)
	}
	if err := filestore.WriteSnapshotFile(newOutputFile, store.New(store.WithLogger(logger())).Snapshot()); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Printf("Created %s\n", newOutputFile)
	return nil
}
