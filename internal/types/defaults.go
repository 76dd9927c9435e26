// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DefaultDocument returns the starter resume shown to a new user
func DefaultDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:    "John Doe",
			Title:   "Software Developer",
			Email:   "john.doe@example.com",
			Phone:   "(123) 456-7890",
			Address: "San Francisco, CA",
			Summary: "Experienced software developer with a passion for creating efficient and scalable applications.",
		},
		Skills: []Skill{
			{ID: "1", Name: "JavaScript"},
			{ID: "2", Name: "React"},
			{ID: "3", Name: "Node.js"},
			{ID: "4", Name: "HTML/CSS"},
		},
		Experience: []Experience{
			{
				ID:          "1",
				JobTitle:    "Senior Frontend Developer",
				Company:     "Tech Solutions Inc.",
				Location:    "San Francisco, CA",
				StartDate:   "2020-01",
				EndDate:     "Present",
				Description: "Developed and maintained multiple React applications. Implemented responsive designs and improved performance.",
				Bullets:     []Bullet{},
			},
			{
				ID:          "2",
				JobTitle:    "Web Developer",
				Company:     "Digital Creations",
				Location:    "San Jose, CA",
				StartDate:   "2017-03",
				EndDate:     "2019-12",
				Description: "Built and maintained client websites. Collaborated with design team to implement UI/UX improvements.",
				Bullets:     []Bullet{},
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "University of California",
				Location:    "Berkeley, CA",
				StartDate:   "2013-09",
				EndDate:     "2017-05",
				Description: "Graduated with honors. Focused on web development and algorithms.",
				Bullets:     []Bullet{},
			},
		},
		CustomSections: []CustomSection{
			{
				ID:    "1",
				Title: "Projects",
				Items: []CustomItem{
					{
						ID:          "1",
						Title:       "E-commerce Platform",
						Description: "Built a full-stack e-commerce platform using React, Node.js, and MongoDB.",
						Bullets:     []Bullet{},
					},
					{
						ID:          "2",
						Title:       "Task Management App",
						Description: "Developed a task management application with real-time updates using React and Firebase.",
						Bullets:     []Bullet{},
					},
				},
			},
		},
	}
}
