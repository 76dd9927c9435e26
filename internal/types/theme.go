// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Font families a template may be rendered with
const (
	FontSans  = "sans"
	FontSerif = "serif"
	FontMono  = "mono"
)

// ThemeConfig carries the user's presentation choices into a template.
type ThemeConfig struct {
	FontFamily      string `json:"fontFamily" yaml:"fontFamily" validate:"omitempty,oneof=sans serif mono"`
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"omitempty,hexcolor"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"omitempty,hexcolor"`
}

// DefaultTheme returns the theme used when nothing is configured
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		FontFamily:      FontSans,
		PrimaryColor:    "#3b82f6",
		BackgroundColor: "#ffffff",
		TextColor:       "#333333",
	}
}

// Validate checks the theme fields using the validator
func (t *ThemeConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Resolve returns a fully populated theme. Empty or invalid fields are
// replaced by their default individually so one bad color never discards
// the rest of the theme.
func (t ThemeConfig) Resolve() ThemeConfig {
	def := DefaultTheme()
	out := ThemeConfig{
		FontFamily:      strings.ToLower(strings.TrimSpace(t.FontFamily)),
		PrimaryColor:    strings.TrimSpace(t.PrimaryColor),
		BackgroundColor: strings.TrimSpace(t.BackgroundColor),
		TextColor:       strings.TrimSpace(t.TextColor),
	}

	var invalid map[string]bool
	if err := out.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			invalid = make(map[string]bool, len(verrs))
			for _, fe := range verrs {
				invalid[fe.StructField()] = true
			}
		}
	}

	if out.FontFamily == "" || invalid["FontFamily"] {
		out.FontFamily = def.FontFamily
	}
	if out.PrimaryColor == "" || invalid["PrimaryColor"] {
		out.PrimaryColor = def.PrimaryColor
	}
	if out.BackgroundColor == "" || invalid["BackgroundColor"] {
		out.BackgroundColor = def.BackgroundColor
	}
	if out.TextColor == "" || invalid["TextColor"] {
		out.TextColor = def.TextColor
	}
	return out
}

// Merge overlays the non-empty fields of patch onto t, matching how the
// theme picker sends partial updates.
func (t ThemeConfig) Merge(patch ThemeConfig) ThemeConfig {
	if patch.FontFamily != "" {
		t.FontFamily = patch.FontFamily
	}
	if patch.PrimaryColor != "" {
		t.PrimaryColor = patch.PrimaryColor
	}
	if patch.BackgroundColor != "" {
		t.BackgroundColor = patch.BackgroundColor
	}
	if patch.TextColor != "" {
		t.TextColor = patch.TextColor
	}
	return t
}

// CSSFontStack maps a font family token to the stack the preview uses
func (t ThemeConfig) CSSFontStack() string {
	switch t.FontFamily {
	case FontSerif:
		return "Merriweather, serif"
	case FontMono:
		return "'Roboto Mono', monospace"
	default:
		return "Inter, sans-serif"
	}
}
