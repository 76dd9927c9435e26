// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintSectionOrder outputs the section order with positions.
func (p *Printer) PrintSectionOrder(order types.SectionOrder) {
	var sb strings.Builder
	for i, ref := range order {
		kind := "fixed"
		if ref.IsCustom() {
			kind = "custom"
		}
		sb.WriteString(fmt.Sprintf("%d. %-20s %s (%s)\n", i+1, ref.Title, ref.ID, kind))
	}
	if len(order) == 0 {
		sb.WriteString("(empty)")
	}

	p.printBox("SECTION ORDER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRepairs outputs the corrections applied while reconciling an order.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRepairs(repairs []store.Repair) {
	if len(repairs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ SECTION ORDER IS CONSISTENT")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied %d repairs:\n\n", len(repairs)))
	for _, r := range repairs {
		sb.WriteString(fmt.Sprintf("⚠ %s\n  %s\n", r.Kind, r.SectionID))
	}

	p.printBox("SECTION ORDER REPAIRS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTree outputs the composed layout: regions, sections and entry counts.
func (p *Printer) PrintTree(tree *compositor.Tree) {
	if tree == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Variant:  %s\n", tree.Variant))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", tree.Header.Name))
	sb.WriteString(fmt.Sprintf("Theme:    %s %s\n", tree.Theme.FontFamily, tree.Theme.PrimaryColor))

	for _, region := range tree.Regions {
		sb.WriteString(fmt.Sprintf("\n[%s]\n", region.Name))
		if len(region.Sections) == 0 {
			sb.WriteString("  (no sections)\n")
		}
		for _, section := range region.Sections {
			sb.WriteString(fmt.Sprintf("  • %s", section.Heading))
			switch {
			case len(section.Entries) > 0:
				sb.WriteString(fmt.Sprintf(" (%d entries)", len(section.Entries)))
			case len(section.Skills) > 0:
				sb.WriteString(fmt.Sprintf(" (%d skills)", len(section.Skills)))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPOSED LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDragStatus outputs a drag session and its preview order.
func (p *Printer) PrintDragStatus(status reorder.Status) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State:    %s\n", status.State))
	if status.Dragged != "" {
		sb.WriteString(fmt.Sprintf("Dragging: %s\n", status.Dragged))
	}
	if status.Over != "" {
		sb.WriteString(fmt.Sprintf("Over:     %s\n", status.Over))
	}
	sb.WriteString("\nPreview:\n")

	count := min(len(status.Preview), maxItemsToShow)
	for i := 0; i < count; i++ {
		marker := " "
		if status.Preview[i].ID == status.Dragged {
			marker = "▸"
		}
		sb.WriteString(fmt.Sprintf(" %s %d. %s\n", marker, i+1, status.Preview[i].ID))
	}
	if len(status.Preview) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(status.Preview)-maxItemsToShow))
	}

	p.printBox("DRAG SESSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArtifacts outputs the files written by an export.
func (p *Printer) PrintArtifacts(artifacts []export.Artifact, paths []string) {
	if len(artifacts) == 0 {
		return
	}

	var sb strings.Builder
	for i, a := range artifacts {
		name := a.Filename()
		if i < len(paths) {
			name = paths[i]
		}
		sb.WriteString(fmt.Sprintf("%-8s %-6s %7d bytes  %s\n", a.Variant, a.Format, len(a.Data), name))
	}

	p.printBox(fmt.Sprintf("EXPORTED %d FILES", len(artifacts)), strings.TrimSuffix(sb.String(), "\n"))
}
