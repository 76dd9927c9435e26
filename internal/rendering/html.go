package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/compositor"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const baseTemplate = "templates/base.html.tmpl"

// RenderHTML renders tree as a standalone HTML page using the built-in
// template for its variant
func RenderHTML(tree *compositor.Tree) (string, error) {
	if tree == nil {
		return "", &RenderError{Format: "html", Message: "nil section tree"}
	}
	tmpl, err := parseVariant(tree.Variant)
	if err != nil {
		return "", err
	}
	return executeHTML(tmpl, tree, tree.Variant)
}

// RenderHTMLWithTemplate renders tree with a user-supplied template file.
// The file must define a "body" template; the shared page, header and
// section templates are available to it.
func RenderHTMLWithTemplate(tree *compositor.Tree, templatePath string) (string, error) {
	if tree == nil {
		return "", &RenderError{Format: "html", Message: "nil section tree"}
	}
	tmpl, err := parseTemplateFile(templatePath)
	if err != nil {
		return "", err
	}
	return executeHTML(tmpl, tree, templatePath)
}

type pageData struct {
	*compositor.Tree
	Style template.CSS
}

func executeHTML(tmpl *template.Template, tree *compositor.Tree, name string) (string, error) {
	clean := sanitizeTree(tree)
	data := pageData{Tree: clean, Style: themeStyle(clean)}

	var result strings.Builder
	if err := tmpl.ExecuteTemplate(&result, "page", data); err != nil {
		return "", &TemplateError{
			Template: name,
			Message:  "failed to execute",
			Cause:    err,
		}
	}
	return result.String(), nil
}

// themeStyle exposes the theme as CSS custom properties. The theme on a
// tree is already resolved, so every value is a validated token or hex
// color.
func themeStyle(tree *compositor.Tree) template.CSS {
	t := tree.Theme
	return template.CSS(fmt.Sprintf(
		":root{--font-family:%s;--primary-color:%s;--background-color:%s;--text-color:%s}",
		t.CSSFontStack(), t.PrimaryColor, t.BackgroundColor, t.TextColor,
	))
}

func newTemplate() *template.Template {
	return template.New("resume").Funcs(template.FuncMap{
		"region": func(tree *compositor.Tree, name string) *compositor.Region {
			if r := tree.Region(name); r != nil {
				return r
			}
			return &compositor.Region{Name: name}
		},
	})
}

func parseVariant(variant string) (*template.Template, error) {
	name := fmt.Sprintf("templates/%s.html.tmpl", variant)
	tmpl, err := newTemplate().ParseFS(templateFS, baseTemplate, name)
	if err != nil {
		return nil, &TemplateError{
			Template: variant,
			Message:  "no built-in template for this variant",
			Cause:    err,
		}
	}
	return tmpl, nil
}

// parseTemplateFile reads and parses a body template from disk on top of
// the built-in base
func parseTemplateFile(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Template: templatePath,
				Message:  "file not found",
				Cause:    err,
			}
		}
		return nil, &TemplateError{
			Template: templatePath,
			Message:  "failed to read file",
			Cause:    err,
		}
	}

	tmpl, err := newTemplate().ParseFS(templateFS, baseTemplate)
	if err != nil {
		return nil, &TemplateError{Template: baseTemplate, Message: "failed to parse", Cause: err}
	}
	if _, err := tmpl.New("custom").Parse(string(content)); err != nil {
		return nil, &TemplateError{
			Template: templatePath,
			Message:  "failed to parse",
			Cause:    err,
		}
	}
	if tmpl.Lookup("body") == nil {
		return nil, &TemplateError{Template: templatePath, Message: `does not define "body"`}
	}
	return tmpl, nil
}
