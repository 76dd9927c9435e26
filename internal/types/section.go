// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Fixed section tokens. These references always exist in a SectionOrder.
const (
	SectionPersonalInfo = "personalInfo"
	SectionSkills       = "skills"
	SectionExperience   = "experience"
	SectionEducation    = "education"
)

// CustomSectionPrefix prefixes the reference id of every custom section
const CustomSectionPrefix = "customSection-"

// FixedSections lists the fixed references in canonical default order.
var FixedSections = []SectionRef{
	{ID: SectionPersonalInfo, Title: "Personal Info"},
	{ID: SectionSkills, Title: "Skills"},
	{ID: SectionExperience, Title: "Experience"},
	{ID: SectionEducation, Title: "Education"},
}

// SectionRef identifies a fixed or custom section inside a SectionOrder
type SectionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// IsFixed reports whether the reference points at one of the four built-in sections
func (r SectionRef) IsFixed() bool {
	return IsFixedID(r.ID)
}

// IsCustom reports whether the reference points at a custom section
func (r SectionRef) IsCustom() bool {
	return strings.HasPrefix(r.ID, CustomSectionPrefix) && len(r.ID) > len(CustomSectionPrefix)
}

// CustomID returns the custom section id behind the reference, or "" for fixed references
func (r SectionRef) CustomID() string {
	if !r.IsCustom() {
		return ""
	}
	return strings.TrimPrefix(r.ID, CustomSectionPrefix)
}

// IsFixedID reports whether id is one of the fixed section tokens
func IsFixedID(id string) bool {
	switch id {
	case SectionPersonalInfo, SectionSkills, SectionExperience, SectionEducation:
		return true
	}
	return false
}

// CustomRef builds the order reference for a custom section
func CustomRef(section CustomSection) SectionRef {
	return SectionRef{ID: CustomSectionPrefix + section.ID, Title: section.Title}
}

// FixedRef returns the canonical reference for a fixed token and its
// position in the default order.
func FixedRef(id string) (SectionRef, int, bool) {
	for i, ref := range FixedSections {
		if ref.ID == id {
			return ref, i, true
		}
	}
	return SectionRef{}, -1, false
}

// SectionOrder is the user-controlled ordering of section references
type SectionOrder []SectionRef

// IDs returns the reference ids in order
func (o SectionOrder) IDs() []string {
	ids := make([]string, len(o))
	for i, ref := range o {
		ids[i] = ref.ID
	}
	return ids
}

// Index returns the position of id in the order, or -1
func (o SectionOrder) Index(id string) int {
	for i, ref := range o {
		if ref.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is referenced
func (o SectionOrder) Contains(id string) bool {
	return o.Index(id) >= 0
}

// Clone returns a copy that shares no backing array with o
func (o SectionOrder) Clone() SectionOrder {
	if o == nil {
		return SectionOrder{}
	}
	return append(SectionOrder{}, o...)
}

// DefaultOrder builds the canonical order for a document: fixed sections
// first, then one reference per custom section in document order.
func DefaultOrder(doc Document) SectionOrder {
	order := make(SectionOrder, 0, len(FixedSections)+len(doc.CustomSections))
	order = append(order, FixedSections...)
	for _, cs := range doc.CustomSections {
		order = append(order, CustomRef(cs))
	}
	return order
}
