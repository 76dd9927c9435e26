// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// Document is the canonical resume content.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	CustomSections []CustomSection `json:"customSections"`
}

// PersonalInfo holds free-text contact fields and the optional summary
type PersonalInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// HasSummary reports whether the summary carries any visible text
func (p PersonalInfo) HasSummary() bool {
	return strings.TrimSpace(p.Summary) != ""
}

// Skill is a single named skill
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Experience is one work history entry
type Experience struct {
	ID          string   `json:"id"`
	JobTitle    string   `json:"jobTitle"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Bullets     []Bullet `json:"bullets"`
}

// Education is one education history entry
type Education struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Bullets     []Bullet `json:"bullets"`
}

// CustomSection is a user-defined titled group of freeform items
type CustomSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

// CustomItem is a single entry inside a custom section
type CustomItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bullets     []Bullet `json:"bullets"`
}

// Bullet is an itemized sub-point. Unchecked bullets stay in the data
// but are never rendered.
type Bullet struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// CheckedBullets returns the text of checked bullets in stored order
func CheckedBullets(bullets []Bullet) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if b.Checked {
			out = append(out, b.Text)
		}
	}
	return out
}

// FindCustomSection returns the index of the custom section with the given id, or -1
func (d *Document) FindCustomSection(id string) int {
	for i := range d.CustomSections {
		if d.CustomSections[i].ID == id {
			return i
		}
	}
	return -1
}

// Normalize resolves optional fields once: nil slices become empty and
// missing ids are generated. It is applied at construction and restore
// boundaries so read sites never re-default.
func (d *Document) Normalize() {
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.CustomSections == nil {
		d.CustomSections = []CustomSection{}
	}

	for i := range d.Skills {
		ensureID(&d.Skills[i].ID)
	}
	for i := range d.Experience {
		ensureID(&d.Experience[i].ID)
		d.Experience[i].Bullets = normalizeBullets(d.Experience[i].Bullets)
	}
	for i := range d.Education {
		ensureID(&d.Education[i].ID)
		d.Education[i].Bullets = normalizeBullets(d.Education[i].Bullets)
	}

	// Custom section ids must be unique for the order bijection to hold;
	// a repeated id keeps the first entry.
	seen := make(map[string]bool, len(d.CustomSections))
	sections := d.CustomSections[:0]
	for _, cs := range d.CustomSections {
		ensureID(&cs.ID)
		if seen[cs.ID] {
			continue
		}
		seen[cs.ID] = true
		if cs.Items == nil {
			cs.Items = []CustomItem{}
		}
		for j := range cs.Items {
			ensureID(&cs.Items[j].ID)
			cs.Items[j].Bullets = normalizeBullets(cs.Items[j].Bullets)
		}
		sections = append(sections, cs)
	}
	d.CustomSections = sections
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := Document{
		PersonalInfo:   d.PersonalInfo,
		Skills:         append([]Skill{}, d.Skills...),
		Experience:     make([]Experience, len(d.Experience)),
		Education:      make([]Education, len(d.Education)),
		CustomSections: make([]CustomSection, len(d.CustomSections)),
	}
	for i, e := range d.Experience {
		e.Bullets = append([]Bullet{}, e.Bullets...)
		out.Experience[i] = e
	}
	for i, e := range d.Education {
		e.Bullets = append([]Bullet{}, e.Bullets...)
		out.Education[i] = e
	}
	for i, cs := range d.CustomSections {
		items := make([]CustomItem, len(cs.Items))
		for j, item := range cs.Items {
			item.Bullets = append([]Bullet{}, item.Bullets...)
			items[j] = item
		}
		cs.Items = items
		out.CustomSections[i] = cs
	}
	return out
}

func normalizeBullets(bullets []Bullet) []Bullet {
	if bullets == nil {
		return []Bullet{}
	}
	for i := range bullets {
		ensureID(&bullets[i].ID)
	}
	return bullets
}

func ensureID(id *string) {
	if strings.TrimSpace(*id) == "" {
		*id = uuid.NewString()
	}
}
