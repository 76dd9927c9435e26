package compositor

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section headings
const (
	HeadingSummary    = "Professional Summary"
	HeadingSkills     = "Skills"
	HeadingExperience = "Work Experience"
	HeadingEducation  = "Education"

	// HeadingUntitled stands in for a custom section title with no
	// visible text
	HeadingUntitled = "Untitled Section"
)

func header(info types.PersonalInfo) Header {
	return Header{
		Name:    info.Name,
		Title:   info.Title,
		Email:   info.Email,
		Phone:   info.Phone,
		Address: info.Address,
		Website: info.Website,
	}
}

// buildSection projects one reference. The bool is false when the
// section has nothing to show.
func buildSection(ref types.SectionRef, doc types.Document) (Section, bool) {
	switch ref.ID {
	case types.SectionPersonalInfo:
		return summarySection(doc.PersonalInfo)
	case types.SectionSkills:
		return skillsSection(doc.Skills)
	case types.SectionExperience:
		return experienceSection(doc.Experience)
	case types.SectionEducation:
		return educationSection(doc.Education)
	}
	if id := ref.CustomID(); id != "" {
		if i := doc.FindCustomSection(id); i >= 0 {
			return customSection(ref.ID, doc.CustomSections[i])
		}
	}
	return Section{}, false
}

func summarySection(info types.PersonalInfo) (Section, bool) {
	if !info.HasSummary() {
		return Section{}, false
	}
	return Section{
		ID:      types.SectionPersonalInfo,
		Kind:    KindSummary,
		Heading: HeadingSummary,
		Summary: info.Summary,
	}, true
}

func skillsSection(skills []types.Skill) (Section, bool) {
	if len(skills) == 0 {
		return Section{}, false
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return Section{
		ID:      types.SectionSkills,
		Kind:    KindSkills,
		Heading: HeadingSkills,
		Skills:  names,
	}, true
}

func experienceSection(jobs []types.Experience) (Section, bool) {
	if len(jobs) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, len(jobs))
	for i, job := range jobs {
		entries[i] = Entry{
			ID:          job.ID,
			Title:       job.JobTitle,
			Subtitle:    joinNonEmpty(job.Company, job.Location),
			Dates:       FormatRange(job.StartDate, job.EndDate),
			Description: job.Description,
			Bullets:     types.CheckedBullets(job.Bullets),
		}
	}
	return Section{
		ID:      types.SectionExperience,
		Kind:    KindExperience,
		Heading: HeadingExperience,
		Entries: entries,
	}, true
}

func educationSection(degrees []types.Education) (Section, bool) {
	if len(degrees) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, len(degrees))
	for i, edu := range degrees {
		entries[i] = Entry{
			ID:          edu.ID,
			Title:       edu.Degree,
			Subtitle:    joinNonEmpty(edu.Institution, edu.Location),
			Dates:       FormatRange(edu.StartDate, edu.EndDate),
			Description: edu.Description,
			Bullets:     types.CheckedBullets(edu.Bullets),
		}
	}
	return Section{
		ID:      types.SectionEducation,
		Kind:    KindEducation,
		Heading: HeadingEducation,
		Entries: entries,
	}, true
}

func customSection(refID string, cs types.CustomSection) (Section, bool) {
	if len(cs.Items) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, len(cs.Items))
	for i, item := range cs.Items {
		entries[i] = Entry{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Bullets:     types.CheckedBullets(item.Bullets),
		}
	}
	heading := strings.TrimSpace(cs.Title)
	if heading == "" {
		heading = HeadingUntitled
	}
	return Section{
		ID:      refID,
		Kind:    KindCustom,
		Heading: heading,
		Entries: entries,
	}, true
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
