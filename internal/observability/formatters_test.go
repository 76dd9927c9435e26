package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSectionOrder(types.SectionOrder{
		{ID: "skills", Title: "Skills"},
		{ID: "customSection-1", Title: "Projects"},
	})
	output := buf.String()

	assert.Contains(t, output, "SECTION ORDER")
	assert.Contains(t, output, "1. Skills")
	assert.Contains(t, output, "customSection-1 (custom)")
	assert.Contains(t, output, "skills (fixed)")
}

func TestPrintSectionOrder_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSectionOrder(nil)

	assert.Contains(t, buf.String(), "(empty)")
}

func TestPrintRepairs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRepairs([]store.Repair{
		{Kind: store.RepairDangling, SectionID: "customSection-gone"},
		{Kind: store.RepairDuplicate, SectionID: "skills"},
	})
	output := buf.String()

	assert.Contains(t, output, "Applied 2 repairs")
	assert.Contains(t, output, "dangling_reference")
	assert.Contains(t, output, "customSection-gone")
}

func TestPrintRepairs_None(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRepairs(nil)

	assert.Contains(t, buf.String(), "SECTION ORDER IS CONSISTENT")
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.DefaultDocument()
	tree := compositor.Render(doc, types.DefaultOrder(doc), types.DefaultTheme(), "classic")
	p.PrintTree(tree)
	output := buf.String()

	assert.Contains(t, output, "COMPOSED LAYOUT")
	assert.Contains(t, output, "Variant:  classic")
	assert.Contains(t, output, "[primary]")
	assert.Contains(t, output, "[secondary]")
	assert.Contains(t, output, "Work Experience (2 entries)")
	assert.Contains(t, output, "Skills (4 skills)")
}

func TestPrintTree_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTree(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDragStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDragStatus(reorder.Status{
		State:   "dragging",
		Dragged: "education",
		Over:    "skills",
		Preview: types.SectionOrder{{ID: "personalInfo"}, {ID: "education"}, {ID: "skills"}},
	})
	output := buf.String()

	assert.Contains(t, output, "State:    dragging")
	assert.Contains(t, output, "Over:     skills")
	assert.Contains(t, output, "▸ 2. education")
}

func TestPrintArtifacts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintArtifacts([]export.Artifact{
		{Variant: "modern", Format: "html", Data: []byte("<html></html>")},
		{Variant: "classic", Format: "text", Data: []byte("x")},
	}, []string{"out/resume-modern.html"})
	output := buf.String()

	assert.Contains(t, output, "EXPORTED 2 FILES")
	assert.Contains(t, output, "out/resume-modern.html")
	assert.Contains(t, output, "resume-classic.txt")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
