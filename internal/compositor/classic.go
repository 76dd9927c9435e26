package compositor

import "github.com/jonathan/resume-builder/internal/types"

// classic is a two-column layout. Skills and custom sections go to the
// secondary column, everything else to the primary one. Each column keeps
// the relative order of the section order.
type classic struct{}

func (classic) Name() string { return "classic" }

func (classic) Compose(doc types.Document, order types.SectionOrder) (Header, []Region) {
	primary := Region{Name: RegionPrimary, Sections: []Section{}}
	secondary := Region{Name: RegionSecondary, Sections: []Section{}}

	for _, ref := range order {
		s, ok := buildSection(ref, doc)
		if !ok {
			continue
		}
		if ref.ID == types.SectionSkills || ref.IsCustom() {
			secondary.Sections = append(secondary.Sections, s)
		} else {
			primary.Sections = append(primary.Sections, s)
		}
	}
	return header(doc.PersonalInfo), []Region{primary, secondary}
}
