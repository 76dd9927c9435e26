package compositor

import "github.com/jonathan/resume-builder/internal/types"

// modern is a single-column layout. The summary sits in the header, so
// the personalInfo reference contributes no section.
type modern struct{}

func (modern) Name() string { return "modern" }

func (modern) Compose(doc types.Document, order types.SectionOrder) (Header, []Region) {
	h := header(doc.PersonalInfo)
	if doc.PersonalInfo.HasSummary() {
		h.Summary = doc.PersonalInfo.Summary
	}

	main := Region{Name: RegionMain, Sections: []Section{}}
	for _, ref := range order {
		if ref.ID == types.SectionPersonalInfo {
			continue
		}
		if s, ok := buildSection(ref, doc); ok {
			main.Sections = append(main.Sections, s)
		}
	}
	return h, []Region{main}
}
