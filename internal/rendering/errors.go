// Package rendering turns a composed section tree into HTML or LaTeX.
package rendering

import "fmt"

// TemplateError reports a resume template that could not be loaded,
// parsed or executed. Template names the variant or template file.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("resume template %q: %s", e.Template, e.Message)
	if e.Template == "" {
		msg = "resume template: " + e.Message
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a tree that cannot be rendered in Format at all
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("cannot render %s: %s", e.Format, e.Message)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
