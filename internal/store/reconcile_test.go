package store

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestReconcileOrder(t *testing.T) {
	doc := types.Document{
		CustomSections: []types.CustomSection{{ID: "p", Title: "Projects"}},
	}

	tests := []struct {
		name        string
		order       types.SectionOrder
		wantIDs     []string
		wantRepairs []RepairKind
	}{
		{
			name:    "valid order is untouched",
			order:   types.DefaultOrder(doc),
			wantIDs: []string{"personalInfo", "skills", "experience", "education", "customSection-p"},
		},
		{
			name: "dangling custom reference is pruned",
			order: append(types.DefaultOrder(doc),
				types.SectionRef{ID: "customSection-deleted"}),
			wantIDs:     []string{"personalInfo", "skills", "experience", "education", "customSection-p"},
			wantRepairs: []RepairKind{RepairDangling},
		},
		{
			name: "unknown and bare prefix references are pruned",
			order: append(types.DefaultOrder(doc),
				types.SectionRef{ID: "summary"}, types.SectionRef{ID: "customSection-"}),
			wantIDs:     []string{"personalInfo", "skills", "experience", "education", "customSection-p"},
			wantRepairs: []RepairKind{RepairUnknown, RepairUnknown},
		},
		{
			name: "duplicates collapse to first occurrence",
			order: types.SectionOrder{
				{ID: "skills"}, {ID: "personalInfo"}, {ID: "skills"},
				{ID: "experience"}, {ID: "education"}, {ID: "customSection-p"},
			},
			wantIDs:     []string{"skills", "personalInfo", "experience", "education", "customSection-p"},
			wantRepairs: []RepairKind{RepairDuplicate},
		},
		{
			name:  "empty order is rebuilt canonically",
			order: nil,
			wantIDs: []string{"personalInfo", "skills", "experience", "education", "customSection-p"},
			wantRepairs: []RepairKind{
				RepairMissingFixed, RepairMissingFixed, RepairMissingFixed, RepairMissingFixed,
				RepairMissingCustom,
			},
		},
		{
			name: "missing fixed reference goes to its canonical slot",
			order: types.SectionOrder{
				{ID: "customSection-p"}, {ID: "personalInfo"}, {ID: "experience"}, {ID: "education"},
			},
			wantIDs:     []string{"customSection-p", "skills", "personalInfo", "experience", "education"},
			wantRepairs: []RepairKind{RepairMissingFixed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, repairs := ReconcileOrder(tt.order, doc)
			assert.Equal(t, tt.wantIDs, got.IDs())

			var kinds []RepairKind
			for _, r := range repairs {
				kinds = append(kinds, r.Kind)
			}
			assert.Equal(t, tt.wantRepairs, kinds)
		})
	}
}

func TestReconcileOrder_FillsTitles(t *testing.T) {
	doc := types.Document{CustomSections: []types.CustomSection{{ID: "p", Title: "Projects"}}}

	got, _ := ReconcileOrder(types.SectionOrder{
		{ID: "personalInfo"}, {ID: "skills", Title: "Core Skills"},
		{ID: "experience"}, {ID: "education"}, {ID: "customSection-p", Title: "old"},
	}, doc)

	assert.Equal(t, "Personal Info", got[0].Title)
	assert.Equal(t, "Core Skills", got[1].Title, "explicit fixed titles are kept")
	assert.Equal(t, "Projects", got[4].Title)
}

func TestDeriveCustomOrder(t *testing.T) {
	sections := []types.CustomSection{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	order := types.SectionOrder{
		{ID: "customSection-c"}, {ID: "skills"}, {ID: "customSection-a"}, {ID: "customSection-missing"},
	}

	got := deriveCustomOrder(order, sections)

	var ids []string
	for _, cs := range got {
		ids = append(ids, cs.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRepairString(t *testing.T) {
	r := Repair{Kind: RepairDangling, SectionID: "customSection-x"}
	assert.Equal(t, "dangling_reference: customSection-x", r.String())
}
