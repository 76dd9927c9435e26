package compositor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectsDoc() types.Document {
	doc := types.DefaultDocument()
	doc.CustomSections = append(doc.CustomSections, types.CustomSection{
		ID:    "2",
		Title: "Awards",
		Items: []types.CustomItem{{ID: "a1", Title: "Hackathon winner"}},
	})
	return doc
}

func TestRender_ModernFollowsOrder(t *testing.T) {
	doc := projectsDoc()
	order := types.SectionOrder{
		{ID: "customSection-2"}, {ID: "education"}, {ID: "personalInfo"},
		{ID: "skills"}, {ID: "experience"}, {ID: "customSection-1"},
	}

	tree := Render(doc, order, types.ThemeConfig{}, "modern")

	require.Len(t, tree.Regions, 1)
	main := tree.Region(RegionMain)
	require.NotNil(t, main)
	assert.Equal(t,
		[]string{"customSection-2", "education", "skills", "experience", "customSection-1"},
		main.SectionIDs())
	assert.Equal(t, doc.PersonalInfo.Summary, tree.Header.Summary)
	assert.Equal(t, "John Doe", tree.Header.Name)
}

func TestRender_ClassicRegions(t *testing.T) {
	doc := projectsDoc()
	order := types.SectionOrder{
		{ID: "customSection-2"}, {ID: "education"}, {ID: "skills"},
		{ID: "personalInfo"}, {ID: "customSection-1"}, {ID: "experience"},
	}

	tree := Render(doc, order, types.ThemeConfig{}, "classic")

	require.Len(t, tree.Regions, 2)
	assert.Equal(t, []string{"education", "personalInfo", "experience"}, tree.Region(RegionPrimary).SectionIDs())
	assert.Equal(t, []string{"customSection-2", "skills", "customSection-1"}, tree.Region(RegionSecondary).SectionIDs())
	assert.Empty(t, tree.Header.Summary, "classic shows the summary as a section")

	summary := tree.Region(RegionPrimary).Sections[1]
	assert.Equal(t, KindSummary, summary.Kind)
	assert.Equal(t, HeadingSummary, summary.Heading)
}

func TestRender_ClassicAssignmentIndependentOfOrder(t *testing.T) {
	doc := projectsDoc()
	base := types.DefaultOrder(doc)

	for i := range base {
		rotated := append(base[i:].Clone(), base[:i]...)
		tree := Render(doc, rotated, types.ThemeConfig{}, "classic")

		for _, s := range tree.Region(RegionPrimary).Sections {
			assert.Contains(t, []Kind{KindSummary, KindExperience, KindEducation}, s.Kind)
		}
		for _, s := range tree.Region(RegionSecondary).Sections {
			assert.Contains(t, []Kind{KindSkills, KindCustom}, s.Kind)
		}
	}
}

func TestRender_EmptySectionsAreSkipped(t *testing.T) {
	doc := projectsDoc()
	doc.Skills = nil
	doc.Education = []types.Education{}
	doc.PersonalInfo.Summary = "  "
	doc.CustomSections[1].Items = nil

	for _, variant := range Variants() {
		t.Run(variant, func(t *testing.T) {
			tree := Render(doc, types.DefaultOrder(doc), types.ThemeConfig{}, variant)

			var ids []string
			for _, r := range tree.Regions {
				for _, s := range r.Sections {
					ids = append(ids, s.ID)
					assert.NotEmpty(t, s.Heading)
				}
			}
			assert.Equal(t, []string{"experience", "customSection-1"}, ids)
			assert.Empty(t, tree.Header.Summary)
		})
	}
}

func TestRender_BlankCustomTitleGetsHeading(t *testing.T) {
	doc := projectsDoc()
	doc.CustomSections[1].Title = "   "

	tree := Render(doc, nil, types.ThemeConfig{}, "modern")

	var headings []string
	for _, s := range tree.Region(RegionMain).Sections {
		headings = append(headings, s.Heading)
	}
	assert.Contains(t, headings, HeadingUntitled)
	assert.NotContains(t, headings, "")
}

func TestRender_OnlyCheckedBullets(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience[0].Bullets = []types.Bullet{
		{ID: "b1", Text: "Shipped v2", Checked: true},
		{ID: "b2", Text: "Drafted idea", Checked: false},
		{ID: "b3", Text: "Cut latency 40%", Checked: true},
	}

	tree := Render(doc, nil, types.ThemeConfig{}, "modern")

	exp := tree.Region(RegionMain).Sections[1]
	require.Equal(t, KindExperience, exp.Kind)
	assert.Equal(t, []string{"Shipped v2", "Cut latency 40%"}, exp.Entries[0].Bullets)
	assert.Len(t, doc.Experience[0].Bullets, 3, "input document is not modified")
}

func TestRender_DanglingReferencesArePruned(t *testing.T) {
	doc := types.DefaultDocument()
	order := append(types.DefaultOrder(doc), types.SectionRef{ID: "customSection-gone"})

	tree := Render(doc, order, types.ThemeConfig{}, "modern")

	assert.NotContains(t, tree.Region(RegionMain).SectionIDs(), "customSection-gone")
}

func TestRender_UnknownVariantFallsBackToModern(t *testing.T) {
	doc := types.DefaultDocument()

	tree := Render(doc, nil, types.ThemeConfig{}, "baroque")
	want := Render(doc, nil, types.ThemeConfig{}, "modern")

	assert.Equal(t, "modern", tree.Variant)
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("fallback tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ThemeIsResolved(t *testing.T) {
	tree := Render(types.DefaultDocument(), nil, types.ThemeConfig{FontFamily: "serif", PrimaryColor: "blue"}, "modern")

	assert.Equal(t, "serif", tree.Theme.FontFamily)
	assert.Equal(t, types.DefaultTheme().PrimaryColor, tree.Theme.PrimaryColor)
}

func TestRender_DefaultDocumentTree(t *testing.T) {
	tree := Render(types.DefaultDocument(), nil, types.DefaultTheme(), "modern")

	want := &Tree{
		Variant: "modern",
		Theme:   types.DefaultTheme(),
		Header: Header{
			Name:    "John Doe",
			Title:   "Software Developer",
			Email:   "john.doe@example.com",
			Phone:   "(123) 456-7890",
			Address: "San Francisco, CA",
			Summary: "Experienced software developer with a passion for creating efficient and scalable applications.",
		},
		Regions: []Region{{
			Name: RegionMain,
			Sections: []Section{
				{
					ID: "skills", Kind: KindSkills, Heading: "Skills",
					Skills: []string{"JavaScript", "React", "Node.js", "HTML/CSS"},
				},
				{
					ID: "experience", Kind: KindExperience, Heading: "Work Experience",
					Entries: []Entry{
						{
							ID: "1", Title: "Senior Frontend Developer",
							Subtitle:    "Tech Solutions Inc., San Francisco, CA",
							Dates:       "Jan 2020 - Present",
							Description: "Developed and maintained multiple React applications. Implemented responsive designs and improved performance.",
						},
						{
							ID: "2", Title: "Web Developer",
							Subtitle:    "Digital Creations, San Jose, CA",
							Dates:       "Mar 2017 - Dec 2019",
							Description: "Built and maintained client websites. Collaborated with design team to implement UI/UX improvements.",
						},
					},
				},
				{
					ID: "education", Kind: KindEducation, Heading: "Education",
					Entries: []Entry{{
						ID: "1", Title: "Bachelor of Science in Computer Science",
						Subtitle:    "University of California, Berkeley, CA",
						Dates:       "Sep 2013 - May 2017",
						Description: "Graduated with honors. Focused on web development and algorithms.",
					}},
				},
				{
					ID: "customSection-1", Kind: KindCustom, Heading: "Projects",
					Entries: []Entry{
						{ID: "1", Title: "E-commerce Platform", Description: "Built a full-stack e-commerce platform using React, Node.js, and MongoDB."},
						{ID: "2", Title: "Task Management App", Description: "Developed a task management application with real-time updates using React and Firebase."},
					},
				},
			},
		}},
	}

	if diff := cmp.Diff(want, tree, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Deterministic(t *testing.T) {
	doc := projectsDoc()
	order := types.DefaultOrder(doc)

	for _, variant := range Variants() {
		a := Render(doc, order, types.DefaultTheme(), variant)
		b := Render(doc, order, types.DefaultTheme(), variant)
		assert.True(t, cmp.Equal(a, b), "variant %s must render identically", variant)
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("Classic")
	assert.True(t, ok)
	assert.Equal(t, "classic", v.Name())

	v, ok = Lookup("")
	assert.False(t, ok)
	assert.Equal(t, DefaultVariant, v.Name())

	assert.Equal(t, []string{"classic", "modern"}, Variants())
}
