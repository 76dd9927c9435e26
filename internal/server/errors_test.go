package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "title", Message: "is required"}
	assert.Equal(t, "validation error: title - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "custom section", ID: "abc"}
	assert.Equal(t, "custom section not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrNotConfigured(t *testing.T) {
	err := &ErrNotConfigured{Feature: "PDF export"}
	assert.Equal(t, "PDF export is not configured", err.Error())
	assert.Equal(t, http.StatusNotImplemented, HTTPStatus(err))
}

func TestHTTPStatus_SchemaValidation(t *testing.T) {
	err := fmt.Errorf("restore: %w", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "document", Message: "required"}}})
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     CustomSectionRequest
		wantErr string
	}{
		{"valid", CustomSectionRequest{Title: "Awards"}, ""},
		{"missing", CustomSectionRequest{}, "validation error: title - is required"},
		{"too long", CustomSectionRequest{Title: string(make([]byte, 121))}, "validation error: title - must be at most 120 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ErrValidation
			assert.True(t, errors.As(err, &verr))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
