package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage custom sections in a snapshot file",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an empty custom section at the end of the order",
	RunE:  runSectionAdd,
}

var sectionRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a custom section and its order reference",
	RunE:  runSectionRemove,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a custom section in place",
	RunE:  runSectionRename,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the section order",
	RunE:  runSectionList,
}

var (
	sectionSnapshotFile string
	sectionID           string
	sectionTitle        string
)

func init() {
	sectionCmd.PersistentFlags().StringVarP(&sectionSnapshotFile, "snapshot", "s", "", "Path to snapshot JSON file (required)")
	_ = sectionCmd.MarkPersistentFlagRequired("snapshot")

	sectionAddCmd.Flags().StringVar(&sectionTitle, "title", "", "Section title (required)")
	_ = sectionAddCmd.MarkFlagRequired("title")

	sectionRemoveCmd.Flags().StringVar(&sectionID, "id", "", "Custom section id, with or without the customSection- prefix (required)")
	_ = sectionRemoveCmd.MarkFlagRequired("id")

	sectionRenameCmd.Flags().StringVar(&sectionID, "id", "", "Custom section id, with or without the customSection- prefix (required)")
	sectionRenameCmd.Flags().StringVar(&sectionTitle, "title", "", "New title (required)")
	_ = sectionRenameCmd.MarkFlagRequired("id")
	_ = sectionRenameCmd.MarkFlagRequired("title")

	sectionCmd.AddCommand(sectionAddCmd, sectionRemoveCmd, sectionRenameCmd, sectionListCmd)
	rootCmd.AddCommand(sectionCmd)
}

// customID accepts either a bare custom section id or its order reference
func customID(id string) string {
	return strings.TrimPrefix(id, types.CustomSectionPrefix)
}

// saveSection writes the store back to the snapshot file
func saveSection(s *store.Store) error {
	if err := filestore.WriteSnapshotFile(sectionSnapshotFile, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if rootVerbose {
		printer().PrintSectionOrder(s.Order())
	}
	return nil
}

func runSectionAdd(_ *cobra.Command, _ []string) error {
	if strings.TrimSpace(sectionTitle) == "" {
		return fmt.Errorf("--title must not be blank")
	}
	s, err := openStore(sectionSnapshotFile)
	if err != nil {
		return err
	}

	_, id := s.AddCustomSection(sectionTitle)
	if err := saveSection(s); err != nil {
		return err
	}
	fmt.Printf("Added custom section %q (%s%s)\n", strings.TrimSpace(sectionTitle), types.CustomSectionPrefix, id)
	return nil
}

func runSectionRemove(_ *cobra.Command, _ []string) error {
	s, err := openStore(sectionSnapshotFile)
	if err != nil {
		return err
	}

	id := customID(sectionID)
	snap := s.Snapshot()
	if snap.Document.FindCustomSection(id) < 0 {
		return fmt.Errorf("custom section not found: %s", id)
	}
	s.RemoveCustomSection(id)
	if err := saveSection(s); err != nil {
		return err
	}
	fmt.Printf("Removed custom section %s\n", id)
	return nil
}

func runSectionRename(_ *cobra.Command, _ []string) error {
	if strings.TrimSpace(sectionTitle) == "" {
		return fmt.Errorf("--title must not be blank")
	}
	s, err := openStore(sectionSnapshotFile)
	if err != nil {
		return err
	}

	id := customID(sectionID)
	if _, ok := s.RenameCustomSection(id, sectionTitle); !ok {
		return fmt.Errorf("custom section not found: %s", id)
	}
	if err := saveSection(s); err != nil {
		return err
	}
	fmt.Printf("Renamed custom section %s to %q\n", id, strings.TrimSpace(sectionTitle))
	return nil
}

func runSectionList(_ *cobra.Command, _ []string) error {
	s, err := openStore(sectionSnapshotFile)
	if err != nil {
		return err
	}
	printer().PrintSectionOrder(s.Order())
	return nil
}
