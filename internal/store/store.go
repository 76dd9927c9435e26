// Package store owns the canonical resume document and its section order.
//
// The section order is the single source of truth for the arrangement of
// custom sections: every mutation reconciles the order against the
// document and then recomputes the stored custom section order from it.
package store

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store is the single shared resume state. All reads return deep copies.
type Store struct {
	mu          sync.Mutex
	doc         types.Document
	order       types.SectionOrder
	logger      *log.Logger
	subscribers []func(types.Snapshot)

	// pending holds snapshots not yet delivered, in mutation order.
	// draining is set while one caller delivers them.
	pending  []types.Snapshot
	draining bool
}

// Option configures a Store at construction
type Option func(*Store)

// WithDocument seeds the store with doc and its canonical order
func WithDocument(doc types.Document) Option {
	return func(s *Store) {
		s.doc = doc.Clone()
		s.order = nil
	}
}

// WithSnapshot seeds the store with an externally supplied snapshot. The
// snapshot is clamped exactly like Restore.
func WithSnapshot(snap types.Snapshot) Option {
	return func(s *Store) {
		s.doc = snap.Document.Clone()
		s.order = snap.SectionOrder.Clone()
	}
}

// WithLogger sets the logger used to report self-repairs
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store. Without options it holds types.DefaultDocument.
func New(opts ...Option) *Store {
	s := &Store{
		doc:    types.DefaultDocument(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.order == nil {
		s.doc.Normalize()
		s.order = types.DefaultOrder(s.doc)
	}
	s.reconcileLocked()
	return s
}

// Subscribe registers fn to receive the snapshot produced by every
// mutation. Notifications run after the state lock is released and are
// delivered in mutation order, one at a time. A mutation made while
// another caller is delivering may return before its own snapshot has
// been delivered.
func (s *Store) Subscribe(fn func(types.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current document and order
func (s *Store) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Order returns a copy of the current section order
func (s *Store) Order() types.SectionOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Clone()
}

// SetPersonalInfo replaces the personal info. The order is unaffected.
func (s *Store) SetPersonalInfo(info types.PersonalInfo) types.Snapshot {
	return s.mutate(func() {
		s.doc.PersonalInfo = info
	})
}

// SetSkills replaces the skill list
func (s *Store) SetSkills(skills []types.Skill) types.Snapshot {
	return s.mutate(func() {
		s.doc.Skills = append([]types.Skill{}, skills...)
	})
}

// SetExperience replaces the experience list
func (s *Store) SetExperience(experience []types.Experience) types.Snapshot {
	return s.mutate(func() {
		next := types.Document{Experience: experience}.Clone()
		s.doc.Experience = next.Experience
	})
}

// SetEducation replaces the education list
func (s *Store) SetEducation(education []types.Education) types.Snapshot {
	return s.mutate(func() {
		next := types.Document{Education: education}.Clone()
		s.doc.Education = next.Education
	})
}

// SetCustomSections replaces the custom section list and reconciles the
// order: new sections are appended in the list's relative order, removed
// sections lose their reference and survivors keep their position. The
// list's own ordering is not applied; the stored order always follows
// the section order.
func (s *Store) SetCustomSections(sections []types.CustomSection) types.Snapshot {
	return s.mutate(func() {
		next := types.Document{CustomSections: sections}.Clone()
		next.Normalize()
		s.doc.CustomSections = next.CustomSections
		s.order = mergeCustomSections(s.order, s.doc.CustomSections)
	})
}

// SetSectionOrder applies a permutation of the current references and
// re-derives the custom section order from it. References without a
// backing section are dropped; it never creates or destroys sections.
func (s *Store) SetSectionOrder(order types.SectionOrder) types.Snapshot {
	return s.mutate(func() {
		s.order = order.Clone()
	})
}

// AddCustomSection appends a new, empty custom section and its reference
// in one step. It returns the new section id.
func (s *Store) AddCustomSection(title string) (types.Snapshot, string) {
	id := uuid.NewString()
	snap := s.mutate(func() {
		section := types.CustomSection{ID: id, Title: strings.TrimSpace(title), Items: []types.CustomItem{}}
		s.doc.CustomSections = append(s.doc.CustomSections, section)
		s.order = append(s.order, types.CustomRef(section))
	})
	return snap, id
}

// RemoveCustomSection deletes a custom section together with its
// reference. Unknown ids are a no-op.
func (s *Store) RemoveCustomSection(id string) types.Snapshot {
	return s.mutate(func() {
		i := s.doc.FindCustomSection(id)
		if i < 0 {
			return
		}
		s.doc.CustomSections = append(s.doc.CustomSections[:i:i], s.doc.CustomSections[i+1:]...)
		s.order = mergeCustomSections(s.order, s.doc.CustomSections)
	})
}

// RenameCustomSection changes a custom section title and its reference
// title. It reports false when the section does not exist.
func (s *Store) RenameCustomSection(id, title string) (types.Snapshot, bool) {
	found := false
	snap := s.mutate(func() {
		i := s.doc.FindCustomSection(id)
		if i < 0 {
			return
		}
		found = true
		s.doc.CustomSections[i].Title = strings.TrimSpace(title)
	})
	return snap, found
}

// SetCustomSectionItems replaces the items of one custom section. It
// reports false when the section does not exist.
func (s *Store) SetCustomSectionItems(id string, items []types.CustomItem) (types.Snapshot, bool) {
	found := false
	snap := s.mutate(func() {
		i := s.doc.FindCustomSection(id)
		if i < 0 {
			return
		}
		found = true
		next := types.Document{CustomSections: []types.CustomSection{{ID: id, Items: items}}}.Clone()
		s.doc.CustomSections[i].Items = next.CustomSections[0].Items
	})
	return snap, found
}

// Restore replaces the whole state with an externally supplied snapshot.
// The snapshot is clamped to the nearest valid state rather than
// rejected: missing fixed references are reinserted, dangling references
// pruned and duplicates collapsed.
func (s *Store) Restore(snap types.Snapshot) types.Snapshot {
	return s.mutate(func() {
		s.doc = snap.Document.Clone()
		s.order = snap.SectionOrder.Clone()
	})
}

// mutate runs fn under the lock, restores the invariants, and queues the
// resulting snapshot for subscribers.
func (s *Store) mutate(fn func()) types.Snapshot {
	s.mu.Lock()
	fn()
	s.reconcileLocked()
	snap := s.snapshotLocked()
	if len(s.subscribers) > 0 {
		s.pending = append(s.pending, snap.Clone())
	}
	drain := !s.draining && len(s.pending) > 0
	if drain {
		s.draining = true
	}
	s.mu.Unlock()

	if drain {
		s.drain()
	}
	return snap
}

// drain delivers queued snapshots one at a time in mutation order, with
// the state lock released. Only one caller drains at a time; snapshots
// queued by concurrent or re-entrant mutations are picked up by the
// caller already draining, so a subscriber never sees an older snapshot
// after a newer one.
func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		subscribers := append([]func(types.Snapshot){}, s.subscribers...)
		s.mu.Unlock()

		for _, notify := range subscribers {
			notify(next.Clone())
		}
	}
}

func (s *Store) reconcileLocked() {
	s.doc.Normalize()
	order, repairs := ReconcileOrder(s.order, s.doc)
	for _, r := range repairs {
		s.logger.Printf("[store] repaired section order: %s", r)
	}
	s.order = order
	s.doc.CustomSections = deriveCustomOrder(s.order, s.doc.CustomSections)
}

func (s *Store) snapshotLocked() types.Snapshot {
	return types.Snapshot{
		Document:     s.doc.Clone(),
		SectionOrder: s.order.Clone(),
	}
}
