package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// Supported artifact formats
const (
	FormatHTML  = "html"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatLaTeX = "latex"
	FormatPDF   = "pdf"
)

// maxConcurrentVariants bounds how many variants render at once. PDF
// printing starts one browser per variant.
const maxConcurrentVariants = 2

// Formats lists every supported format
func Formats() []string {
	return []string{FormatHTML, FormatText, FormatJSON, FormatLaTeX, FormatPDF}
}

// Artifact is one rendered output
type Artifact struct {
	Variant string
	Format  string
	Data    []byte
}

// Filename returns the conventional file name for the artifact
func (a Artifact) Filename() string {
	return fmt.Sprintf("resume-%s.%s", a.Variant, Extension(a.Format))
}

// Extension maps a format to its file extension
func Extension(format string) string {
	switch format {
	case FormatText:
		return "txt"
	case FormatLaTeX:
		return "tex"
	}
	return format
}

// ContentType maps a format to its MIME type
func ContentType(format string) string {
	switch format {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatText, FormatLaTeX:
		return "text/plain; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Render produces tree in one of the non-PDF formats
func Render(tree *compositor.Tree, format string) ([]byte, error) {
	switch format {
	case FormatHTML:
		html, err := rendering.RenderHTML(tree)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	case FormatText:
		html, err := rendering.RenderHTML(tree)
		if err != nil {
			return nil, err
		}
		text, err := PlainText(html)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case FormatJSON:
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, &ExportError{Message: "failed to marshal section tree", Cause: err}
		}
		return data, nil
	case FormatLaTeX:
		tex, err := rendering.RenderLaTeX(tree)
		if err != nil {
			return nil, err
		}
		return []byte(tex), nil
	}
	return nil, &ExportError{Message: fmt.Sprintf("unsupported format %q", format)}
}

// PDF renders tree to HTML and prints it
func PDF(ctx context.Context, tree *compositor.Tree, printer PDFPrinter) ([]byte, error) {
	if printer == nil {
		return nil, &ExportError{Message: "no PDF printer configured"}
	}
	html, err := rendering.RenderHTML(tree)
	if err != nil {
		return nil, err
	}
	return printer.PrintPDF(ctx, html)
}

// Request describes a multi-variant export
type Request struct {
	Snapshot types.Snapshot
	Theme    types.ThemeConfig
	Variants []string
	Formats  []string
	Printer  PDFPrinter
}

// RenderVariants renders every requested variant and format
// concurrently. Artifacts come back in request order: variants outer,
// formats inner. The first failure cancels the remaining work.
func RenderVariants(ctx context.Context, req Request) ([]Artifact, error) {
	variants := resolveVariants(req.Variants)
	if len(variants) == 0 {
		variants = compositor.Variants()
	}
	formats := unique(req.Formats)
	if len(formats) == 0 {
		formats = []string{FormatHTML}
	}
	for _, f := range formats {
		if f == FormatPDF && req.Printer == nil {
			return nil, &ExportError{Message: "pdf requested but no PDF printer configured"}
		}
	}

	results := make([][]Artifact, len(variants))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVariants)

	for i, variant := range variants {
		g.Go(func() error {
			tree := compositor.RenderSnapshot(req.Snapshot, req.Theme, variant)
			artifacts := make([]Artifact, 0, len(formats))
			for _, format := range formats {
				var data []byte
				var err error
				if format == FormatPDF {
					data, err = PDF(gCtx, tree, req.Printer)
				} else {
					data, err = Render(tree, format)
				}
				if err != nil {
					return fmt.Errorf("variant %s, format %s: %w", tree.Variant, format, err)
				}
				artifacts = append(artifacts, Artifact{Variant: tree.Variant, Format: format, Data: data})
			}
			results[i] = artifacts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Artifact
	for _, artifacts := range results {
		out = append(out, artifacts...)
	}
	return out, nil
}

// resolveVariants maps requested names to registered variants and drops
// repeats, so no two artifacts share a file name. Unknown names resolve
// to the default variant.
func resolveVariants(requested []string) []string {
	names := make([]string, 0, len(requested))
	for _, name := range requested {
		v, _ := compositor.Lookup(name)
		names = append(names, v.Name())
	}
	return unique(names)
}

// unique drops repeated values, keeping first occurrences in order
func unique(values []string) []string {
	var out []string
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// WriteArtifacts writes artifacts into dir and returns the written paths
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &ExportError{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.Filename())
		if err := os.WriteFile(path, a.Data, 0644); err != nil {
			return nil, &ExportError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ParseList splits a comma separated flag value, dropping blanks
func ParseList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
