package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionRef_Kinds(t *testing.T) {
	tests := []struct {
		id       string
		fixed    bool
		custom   bool
		customID string
	}{
		{"personalInfo", true, false, ""},
		{"education", true, false, ""},
		{"customSection-abc", false, true, "abc"},
		{"customSection-", false, false, ""},
		{"summary", false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ref := SectionRef{ID: tt.id}
			assert.Equal(t, tt.fixed, ref.IsFixed())
			assert.Equal(t, tt.custom, ref.IsCustom())
			assert.Equal(t, tt.customID, ref.CustomID())
		})
	}
}

func TestFixedRef(t *testing.T) {
	ref, pos, ok := FixedRef(SectionExperience)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Equal(t, "Experience", ref.Title)

	_, pos, ok = FixedRef("customSection-1")
	assert.False(t, ok)
	assert.Equal(t, -1, pos)
}

func TestDefaultOrder(t *testing.T) {
	doc := Document{CustomSections: []CustomSection{{ID: "a", Title: "Talks"}, {ID: "b", Title: "Awards"}}}

	order := DefaultOrder(doc)

	assert.Equal(t,
		[]string{"personalInfo", "skills", "experience", "education", "customSection-a", "customSection-b"},
		order.IDs())
	assert.Equal(t, "Awards", order[5].Title)
}

func TestSectionOrder_IndexAndContains(t *testing.T) {
	order := DefaultOrder(DefaultDocument())

	assert.Equal(t, 3, order.Index(SectionEducation))
	assert.Equal(t, -1, order.Index("nope"))
	assert.True(t, order.Contains("customSection-1"))
	assert.False(t, order.Contains("customSection-2"))
}

func TestSectionOrder_Clone(t *testing.T) {
	var empty SectionOrder
	assert.NotNil(t, empty.Clone())

	order := DefaultOrder(Document{})
	clone := order.Clone()
	clone[0].Title = "changed"
	assert.Equal(t, "Personal Info", order[0].Title)
}
