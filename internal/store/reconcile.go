package store

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// RepairKind names a self-repair applied while reconciling a section order
type RepairKind string

// Repairs the store applies silently instead of failing
const (
	RepairDangling      RepairKind = "dangling_reference"
	RepairUnknown       RepairKind = "unknown_reference"
	RepairDuplicate     RepairKind = "duplicate_reference"
	RepairMissingFixed  RepairKind = "missing_fixed_reference"
	RepairMissingCustom RepairKind = "missing_custom_reference"
)

// Repair records one correction made to a section order
type Repair struct {
	Kind      RepairKind
	SectionID string
}

func (r Repair) String() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.SectionID)
}

// ReconcileOrder clamps order to the nearest valid order for doc:
//   - references to unknown ids or missing custom sections are dropped
//   - duplicates collapse to their first occurrence
//   - missing fixed references are inserted at their canonical position
//   - custom sections without a reference are appended in document order
//
// Custom reference titles are taken from the backing section. The
// returned repairs are empty when order was already valid.
func ReconcileOrder(order types.SectionOrder, doc types.Document) (types.SectionOrder, []Repair) {
	var repairs []Repair

	customByID := make(map[string]types.CustomSection, len(doc.CustomSections))
	for _, cs := range doc.CustomSections {
		customByID[cs.ID] = cs
	}

	out := make(types.SectionOrder, 0, len(order)+len(types.FixedSections))
	seen := make(map[string]bool, len(order))
	for _, ref := range order {
		if seen[ref.ID] {
			repairs = append(repairs, Repair{Kind: RepairDuplicate, SectionID: ref.ID})
			continue
		}
		switch {
		case ref.IsFixed():
			if ref.Title == "" {
				canonical, _, _ := types.FixedRef(ref.ID)
				ref.Title = canonical.Title
			}
		case ref.IsCustom():
			cs, ok := customByID[ref.CustomID()]
			if !ok {
				repairs = append(repairs, Repair{Kind: RepairDangling, SectionID: ref.ID})
				continue
			}
			ref = types.CustomRef(cs)
		default:
			repairs = append(repairs, Repair{Kind: RepairUnknown, SectionID: ref.ID})
			continue
		}
		seen[ref.ID] = true
		out = append(out, ref)
	}

	for pos, fixed := range types.FixedSections {
		if seen[fixed.ID] {
			continue
		}
		repairs = append(repairs, Repair{Kind: RepairMissingFixed, SectionID: fixed.ID})
		out = insertAt(out, min(pos, len(out)), fixed)
		seen[fixed.ID] = true
	}

	for _, cs := range doc.CustomSections {
		ref := types.CustomRef(cs)
		if seen[ref.ID] {
			continue
		}
		repairs = append(repairs, Repair{Kind: RepairMissingCustom, SectionID: ref.ID})
		out = append(out, ref)
		seen[ref.ID] = true
	}

	return out, repairs
}

// mergeCustomSections applies a replacement custom section list to order:
// references of surviving sections keep their position, references of
// removed sections are dropped and new sections are appended in the
// relative order of sections.
func mergeCustomSections(order types.SectionOrder, sections []types.CustomSection) types.SectionOrder {
	present := make(map[string]types.CustomSection, len(sections))
	for _, cs := range sections {
		present[cs.ID] = cs
	}

	out := make(types.SectionOrder, 0, len(order)+len(sections))
	referenced := make(map[string]bool, len(order))
	for _, ref := range order {
		if !ref.IsCustom() {
			out = append(out, ref)
			continue
		}
		cs, ok := present[ref.CustomID()]
		if !ok {
			continue
		}
		referenced[cs.ID] = true
		out = append(out, types.CustomRef(cs))
	}
	for _, cs := range sections {
		if referenced[cs.ID] {
			continue
		}
		referenced[cs.ID] = true
		out = append(out, types.CustomRef(cs))
	}
	return out
}

// deriveCustomOrder returns sections arranged by the relative order of
// their references in order. It never creates or drops entries; sections
// that are not referenced keep their relative order at the end.
func deriveCustomOrder(order types.SectionOrder, sections []types.CustomSection) []types.CustomSection {
	byID := make(map[string]types.CustomSection, len(sections))
	for _, cs := range sections {
		byID[cs.ID] = cs
	}

	out := make([]types.CustomSection, 0, len(sections))
	placed := make(map[string]bool, len(sections))
	for _, ref := range order {
		id := ref.CustomID()
		if id == "" || placed[id] {
			continue
		}
		if cs, ok := byID[id]; ok {
			out = append(out, cs)
			placed[id] = true
		}
	}
	for _, cs := range sections {
		if !placed[cs.ID] {
			out = append(out, cs)
		}
	}
	return out
}

func insertAt(order types.SectionOrder, i int, ref types.SectionRef) types.SectionOrder {
	order = append(order, types.SectionRef{})
	copy(order[i+1:], order[i:])
	order[i] = ref
	return order
}
