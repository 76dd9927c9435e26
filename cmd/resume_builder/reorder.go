package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Move a section by running a drag session",
	Long: `Picks up --section and drops it on --over, exactly as a drag in the editor would.
Alternatively --steps moves the section by keyboard: negative values move it up, positive down.
The snapshot file is rewritten in place unless --out is given.`,
	RunE: runReorder,
}

var (
	reorderSnapshotFile string
	reorderSection      string
	reorderOver         string
	reorderSteps        int
	reorderOutputFile   string
	reorderDryRun       bool
)

func init() {
	reorderCmd.Flags().StringVarP(&reorderSnapshotFile, "snapshot", "s", "", "Path to snapshot JSON file (required)")
	reorderCmd.Flags().StringVar(&reorderSection, "section", "", "Section reference id to move, e.g. skills or customSection-<id> (required)")
	reorderCmd.Flags().StringVar(&reorderOver, "over", "", "Section reference id to drop on")
	reorderCmd.Flags().IntVar(&reorderSteps, "steps", 0, "Keyboard moves: negative moves up, positive moves down")
	reorderCmd.Flags().StringVarP(&reorderOutputFile, "out", "o", "", "Write the result here instead of the input file")
	reorderCmd.Flags().BoolVar(&reorderDryRun, "dry-run", false, "Print the preview without writing")

	_ = reorderCmd.MarkFlagRequired("snapshot")
	_ = reorderCmd.MarkFlagRequired("section")
	reorderCmd.MarkFlagsMutuallyExclusive("over", "steps")
	rootCmd.AddCommand(reorderCmd)
}

func runReorder(_ *cobra.Command, _ []string) error {
	if _, err := loadSettings(); err != nil {
		return err
	}
	if reorderOver == "" && reorderSteps == 0 {
		return fmt.Errorf("one of --over or --steps is required")
	}

	s, err := openStore(reorderSnapshotFile)
	if err != nil {
		return err
	}
	controller := reorder.NewController(s, logger())

	var committed bool
	if reorderSteps != 0 {
		committed, err = keyboardReorder(controller, reorderSection, reorderSteps, reorderDryRun)
	} else {
		committed, err = dragReorder(controller, s.Order(), reorderSection, reorderOver, reorderDryRun)
	}
	if err != nil {
		return err
	}

	p := printer()
	p.PrintSectionOrder(s.Order())
	if !committed || reorderDryRun {
		fmt.Println("Section order unchanged")
		return nil
	}

	out := reorderOutputFile
	if out == "" {
		out = reorderSnapshotFile
	}
	if err := filestore.WriteSnapshotFile(out, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	fmt.Printf("Saved section order to %s\n", out)
	return nil
}

// Geometry of the single-column layout a pointer drag is played on
const (
	layoutWidth     = 600
	layoutRowHeight = 48
)

// dragReorder plays a pointer drag from section to over on a stacked
// layout of order. With dryRun the drag is cancelled after the preview.
func dragReorder(c *reorder.Controller, order types.SectionOrder, section, over string, dryRun bool) (bool, error) {
	layout := reorder.StackedLayout(order, layoutWidth, layoutRowHeight)
	from, ok := reorder.Locate(layout, section)
	if !ok {
		return false, fmt.Errorf("unknown section %q", section)
	}
	to, ok := reorder.Locate(layout, over)
	if !ok {
		return false, fmt.Errorf("unknown drop target %q", over)
	}

	pointer := reorder.NewPointerAdapter(c, 0)
	pointer.SetLayout(layout)
	pointer.Down(section, from)
	pointer.MoveTo(to)
	if rootVerbose || dryRun {
		printer().PrintDragStatus(c.Status())
	}
	if dryRun {
		pointer.Escape()
		return false, nil
	}
	_, committed := pointer.Up(to)
	return committed, nil
}

// keyboardReorder picks the section up, presses an arrow key |steps|
// times and drops
func keyboardReorder(c *reorder.Controller, section string, steps int, dryRun bool) (bool, error) {
	keys := reorder.NewKeyboardAdapter(c)
	keys.Press(reorder.KeyPickUp, section)
	if c.State() != reorder.Dragging {
		return false, fmt.Errorf("unknown section %q", section)
	}

	key, count := reorder.KeyDown, steps
	if steps < 0 {
		key, count = reorder.KeyUp, -steps
	}
	for range count {
		keys.Press(key, section)
	}
	if rootVerbose || dryRun {
		printer().PrintDragStatus(c.Status())
	}
	if dryRun {
		keys.Press(reorder.KeyEscape, section)
		return false, nil
	}
	_, committed := keys.Press(reorder.KeyDrop, section)
	return committed, nil
}
