// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Snapshot is an immutable copy of the store state handed to persistence,
// export and rendering collaborators.
type Snapshot struct {
	Document     Document     `json:"document"`
	SectionOrder SectionOrder `json:"sectionOrder"`
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Document:     s.Document.Clone(),
		SectionOrder: s.SectionOrder.Clone(),
	}
}
