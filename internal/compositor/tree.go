package compositor

import "github.com/jonathan/resume-builder/internal/types"

// Kind identifies what a rendered section holds
type Kind string

// Section kinds
const (
	KindSummary    Kind = "summary"
	KindSkills     Kind = "skills"
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
	KindCustom     Kind = "custom"
)

// Region names used by the built-in variants
const (
	RegionMain      = "main"
	RegionPrimary   = "primary"
	RegionSecondary = "secondary"
)

// Tree is the renderable projection of a resume for one variant
type Tree struct {
	Variant string            `json:"variant"`
	Theme   types.ThemeConfig `json:"theme"`
	Header  Header            `json:"header"`
	Regions []Region          `json:"regions"`
}

// Header carries the contact block. Summary is only set by variants
// that show it in the header.
type Header struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Region is a layout area holding sections in render order
type Region struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// Section is one non-empty rendered section
type Section struct {
	ID      string   `json:"id"`
	Kind    Kind     `json:"kind"`
	Heading string   `json:"heading"`
	Summary string   `json:"summary,omitempty"`
	Skills  []string `json:"skills,omitempty"`
	Entries []Entry  `json:"entries,omitempty"`
}

// Entry is a job, degree or custom item
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Region returns the named region, or nil
func (t *Tree) Region(name string) *Region {
	for i := range t.Regions {
		if t.Regions[i].Name == name {
			return &t.Regions[i]
		}
	}
	return nil
}

// SectionIDs returns the reference ids rendered in a region, in order
func (r *Region) SectionIDs() []string {
	ids := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		ids[i] = s.ID
	}
	return ids
}
