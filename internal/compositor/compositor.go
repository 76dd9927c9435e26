// Package compositor projects a resume document and its section order
// into a layout-specific tree of renderable sections.
//
// Rendering is a pure function of its inputs. Empty sections are
// skipped, only checked bullets are shown, and references that point at
// nothing are pruned before layout.
package compositor

import (
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// Render builds the tree for doc laid out by variant. The order is
// reconciled against doc first, so an empty order renders the canonical
// default and dangling references never render.
func Render(doc types.Document, order types.SectionOrder, theme types.ThemeConfig, variant string) *Tree {
	v, _ := Lookup(variant)
	order, _ = store.ReconcileOrder(order, doc)

	h, regions := v.Compose(doc, order)
	return &Tree{
		Variant: v.Name(),
		Theme:   theme.Resolve(),
		Header:  h,
		Regions: regions,
	}
}

// RenderSnapshot renders a store snapshot
func RenderSnapshot(snap types.Snapshot, theme types.ThemeConfig, variant string) *Tree {
	return Render(snap.Document, snap.SectionOrder, theme, variant)
}
