package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/compositor"
)

const latexTemplate = "templates/resume.tex.tmpl"

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes the LaTeX special characters \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

// RenderLaTeX renders tree as a LaTeX article. Regions are emitted one
// after another since column layout is left to the document class.
func RenderLaTeX(tree *compositor.Tree) (string, error) {
	if tree == nil {
		return "", &RenderError{Format: "latex", Message: "nil section tree"}
	}

	tmpl, err := template.New("resume.tex.tmpl").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).ParseFS(templateFS, latexTemplate)
	if err != nil {
		return "", &TemplateError{
			Template: latexTemplate,
			Message:  "failed to parse",
			Cause:    err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, sanitizeTree(tree)); err != nil {
		return "", &TemplateError{
			Template: latexTemplate,
			Message:  "failed to execute",
			Cause:    err,
		}
	}
	return result.String(), nil
}
