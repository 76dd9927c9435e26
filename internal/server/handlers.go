package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxBodyBytes caps request bodies; a full snapshot is a few KB
const maxBodyBytes = 1 << 20

// CustomSectionRequest is the body for creating or renaming a custom section
type CustomSectionRequest struct {
	Title string `json:"title" validate:"required,max=120"`
}

// CustomSectionResponse is returned after creating a custom section
type CustomSectionResponse struct {
	ID       string         `json:"id"`
	Snapshot types.Snapshot `json:"snapshot"`
}

// DragRequest carries one drag event. The drop target is either named
// directly with Over or resolved from Point against the rendered Regions.
type DragRequest struct {
	ID      string           `json:"id,omitempty"`
	Over    string           `json:"over,omitempty"`
	Point   *reorder.Point   `json:"point,omitempty"`
	Regions []reorder.Region `json:"regions,omitempty"`
}

// DropResponse reports the outcome of a drop
type DropResponse struct {
	Committed    bool               `json:"committed"`
	SectionOrder types.SectionOrder `json:"sectionOrder"`
	Status       reorder.Status     `json:"status"`
}

// VariantsResponse lists what the render endpoint accepts
type VariantsResponse struct {
	Variants []string `json:"variants"`
	Default  string   `json:"default"`
	Formats  []string `json:"formats"`
}

// readBody reads a bounded request body and checks that it is JSON
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	if !json.Valid(data) {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return data, nil
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks the validate tags of a decoded body and reports
// the first failing field
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return &ErrValidation{Field: fe.Field(), Message: "is required"}
	case "max":
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("must be at most %s characters", fe.Param())}
	}
	return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed %s validation", fe.Tag())}
}

// decodeTitle reads a CustomSectionRequest and validates the trimmed title
func decodeTitle(w http.ResponseWriter, r *http.Request) (string, error) {
	var req CustomSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		return "", err
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validateRequest(req); err != nil {
		return "", err
	}
	return req.Title, nil
}

// decodeBody reads the request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleGetResume returns the current snapshot
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleRestoreResume replaces the whole resume. The body is checked
// against the snapshot schema, then clamped by the store.
func (s *Server) handleRestoreResume(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}
	if err := schemas.ValidateSnapshot(data); err != nil {
		s.failure(w, err)
		return
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.failure(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	s.drag.Cancel()
	s.jsonResponse(w, http.StatusOK, s.store.Restore(snap))
}

// replaceHandler decodes a body of type T and applies it to the store
func replaceHandler[T any](s *Server, apply func(T) types.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v T
		if err := decodeBody(w, r, &v); err != nil {
			s.failure(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, apply(v))
	}
}

func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetPersonalInfo)(w, r)
}

func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetSkills)(w, r)
}

func (s *Server) handleSetExperience(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetExperience)(w, r)
}

func (s *Server) handleSetEducation(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetEducation)(w, r)
}

func (s *Server) handleSetCustomSections(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetCustomSections)(w, r)
}

func (s *Server) handleSetSectionOrder(w http.ResponseWriter, r *http.Request) {
	replaceHandler(s, s.store.SetSectionOrder)(w, r)
}

// handleAddCustomSection creates an empty custom section at the end of the order
func (s *Server) handleAddCustomSection(w http.ResponseWriter, r *http.Request) {
	title, err := decodeTitle(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	snap, id := s.store.AddCustomSection(title)
	s.jsonResponse(w, http.StatusCreated, CustomSectionResponse{ID: id, Snapshot: snap})
}

// handleRenameCustomSection changes a custom section title in place
func (s *Server) handleRenameCustomSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	title, err := decodeTitle(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	snap, ok := s.store.RenameCustomSection(id, title)
	if !ok {
		s.failure(w, &ErrNotFound{Resource: "custom section", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleSetCustomSectionItems replaces the items of one custom section
func (s *Server) handleSetCustomSectionItems(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var items []types.CustomItem
	if err := decodeBody(w, r, &items); err != nil {
		s.failure(w, err)
		return
	}

	snap, ok := s.store.SetCustomSectionItems(id, items)
	if !ok {
		s.failure(w, &ErrNotFound{Resource: "custom section", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, snap)
}

// handleRemoveCustomSection deletes a custom section and its reference
func (s *Server) handleRemoveCustomSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	current := s.store.Snapshot()
	if current.Document.FindCustomSection(id) < 0 {
		s.failure(w, &ErrNotFound{Resource: "custom section", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.RemoveCustomSection(id))
}

// dragTarget resolves the drop target named by req
func dragTarget(req DragRequest) string {
	if req.Over != "" || req.Point == nil {
		return req.Over
	}
	return reorder.ResolveTarget(*req.Point, req.Regions)
}

func (s *Server) handleDragStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.drag.Status())
}

// handleDragStart picks up a section. Unknown ids leave the session idle.
func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	var req DragRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if req.ID == "" {
		s.failure(w, &ErrValidation{Field: "id", Message: "is required"})
		return
	}
	s.drag.Start(req.ID)
	s.jsonResponse(w, http.StatusOK, s.drag.Status())
}

// handleDragMove updates the drop target and returns the live preview
func (s *Server) handleDragMove(w http.ResponseWriter, r *http.Request) {
	var req DragRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	s.drag.Move(dragTarget(req))
	s.jsonResponse(w, http.StatusOK, s.drag.Status())
}

// handleDragDrop ends the drag, committing the permutation when valid
func (s *Server) handleDragDrop(w http.ResponseWriter, r *http.Request) {
	var req DragRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	_, committed := s.drag.Drop(dragTarget(req))
	s.jsonResponse(w, http.StatusOK, DropResponse{
		Committed:    committed,
		SectionOrder: s.store.Order(),
		Status:       s.drag.Status(),
	})
}

func (s *Server) handleDragCancel(w http.ResponseWriter, _ *http.Request) {
	s.drag.Cancel()
	s.jsonResponse(w, http.StatusOK, s.drag.Status())
}

func (s *Server) handleListVariants(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, VariantsResponse{
		Variants: compositor.Variants(),
		Default:  compositor.DefaultVariant,
		Formats:  export.Formats(),
	})
}

// tree composes the current snapshot using the query's variant and theme
// overrides on top of the server defaults
func (s *Server) tree(r *http.Request) *compositor.Tree {
	q := r.URL.Query()
	variant := q.Get("variant")
	if variant == "" {
		variant = s.variant
	}
	theme := s.theme.Merge(types.ThemeConfig{
		FontFamily:      q.Get("fontFamily"),
		PrimaryColor:    q.Get("primaryColor"),
		BackgroundColor: q.Get("backgroundColor"),
		TextColor:       q.Get("textColor"),
	})
	return compositor.RenderSnapshot(s.store.Snapshot(), theme, variant)
}

// handleRender renders the resume as html, text, json or latex
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatHTML
	}
	if format == export.FormatPDF {
		s.handleExportPDF(w, r)
		return
	}
	if !slices.Contains(export.Formats(), format) {
		s.failure(w, &ErrValidation{Field: "format", Message: "unsupported format " + format})
		return
	}

	tree := s.tree(r)
	data, err := export.Render(tree, format)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.writeArtifact(w, export.Artifact{Variant: tree.Variant, Format: format, Data: data}, false)
}

// handleExportPDF prints the rendered HTML through the configured printer
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		s.failure(w, &ErrNotConfigured{Feature: "PDF export"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.pdfTimeout)
	defer cancel()

	tree := s.tree(r)
	data, err := export.PDF(ctx, tree, s.printer)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.errorResponse(w, http.StatusGatewayTimeout, "PDF export timed out")
			return
		}
		s.failure(w, err)
		return
	}
	s.writeArtifact(w, export.Artifact{Variant: tree.Variant, Format: export.FormatPDF, Data: data}, true)
}

func (s *Server) writeArtifact(w http.ResponseWriter, artifact export.Artifact, download bool) {
	w.Header().Set("Content-Type", export.ContentType(artifact.Format))
	w.Header().Set("X-Resume-Variant", artifact.Variant)
	if download {
		w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename()+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
