package rendering

import (
	"html"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// sanitizeText strips any markup pasted into a free-text field and
// returns plain text. Output escaping is left to the template engine.
func sanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(raw)))
}

func sanitizeAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = sanitizeText(v)
	}
	return out
}

// sanitizeTree returns a copy of tree with every user-supplied string
// reduced to plain text.
func sanitizeTree(tree *compositor.Tree) *compositor.Tree {
	out := *tree
	h := tree.Header
	out.Header = compositor.Header{
		Name:    sanitizeText(h.Name),
		Title:   sanitizeText(h.Title),
		Email:   sanitizeText(h.Email),
		Phone:   sanitizeText(h.Phone),
		Address: sanitizeText(h.Address),
		Website: sanitizeText(h.Website),
		Summary: sanitizeText(h.Summary),
	}

	out.Regions = make([]compositor.Region, len(tree.Regions))
	for i, region := range tree.Regions {
		sections := make([]compositor.Section, len(region.Sections))
		for j, s := range region.Sections {
			if s.Heading = sanitizeText(s.Heading); s.Heading == "" {
				s.Heading = compositor.HeadingUntitled
			}
			s.Summary = sanitizeText(s.Summary)
			s.Skills = sanitizeAll(s.Skills)

			entries := make([]compositor.Entry, len(s.Entries))
			for k, e := range s.Entries {
				e.Title = sanitizeText(e.Title)
				e.Subtitle = sanitizeText(e.Subtitle)
				e.Dates = sanitizeText(e.Dates)
				e.Description = sanitizeText(e.Description)
				e.Bullets = sanitizeAll(e.Bullets)
				entries[k] = e
			}
			s.Entries = entries
			sections[j] = s
		}
		out.Regions[i] = compositor.Region{Name: region.Name, Sections: sections}
	}
	return &out
}
