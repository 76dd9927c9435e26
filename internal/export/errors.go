// Package export produces resume artifacts (HTML, plain text, JSON,
// LaTeX and PDF) for one or more template variants.
package export

import "fmt"

// ExportError represents a failure producing or writing an artifact
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
