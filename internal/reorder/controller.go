package reorder

import (
	"log"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// OrderStore is the slice of the store a drag session needs
type OrderStore interface {
	Order() types.SectionOrder
	SetSectionOrder(order types.SectionOrder) types.Snapshot
}

// State is the drag session state
type State int

// Drag session states
const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Status describes the session as seen by a view
type Status struct {
	State   string             `json:"state"`
	Dragged string             `json:"dragged,omitempty"`
	Over    string             `json:"over,omitempty"`
	Preview types.SectionOrder `json:"preview"`
}

// Controller is a single drag session over one store. Only one drag is
// active at a time; starting a new drag abandons the current one.
//
// The controller never caches the order across events. Every event
// re-reads the store, so a dragged section deleted mid-drag can never be
// committed.
type Controller struct {
	mu      sync.Mutex
	store   OrderStore
	logger  *log.Logger
	state   State
	dragged string
	over    string
}

// NewController creates an idle controller bound to store
func NewController(store OrderStore, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{store: store, logger: logger}
}

// Start begins dragging id. A drag already in progress is abandoned
// without committing. Ids that are not in the current order leave the
// controller idle and return false.
func (c *Controller) Start(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Dragging {
		c.logger.Printf("[drag] abandoning drag of %s", c.dragged)
		c.resetLocked()
	}
	if !c.store.Order().Contains(id) {
		c.logger.Printf("[drag] ignoring start for unknown section %s", id)
		return false
	}
	c.state = Dragging
	c.dragged = id
	return true
}

// Move records the current drop target and returns the live preview.
// Nothing is committed. An empty or unknown target previews the
// unchanged order.
func (c *Controller) Move(overID string) types.SectionOrder {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := c.store.Order()
	if c.state != Dragging {
		return order
	}
	c.over = overID
	return Permute(order, c.dragged, overID)
}

// Drop ends the drag on overID. When the target is empty, equals the
// dragged section, or either section has disappeared from the store, the
// drag is discarded. Otherwise the permutation is committed. The second
// return value reports whether a commit happened.
func (c *Controller) Drop(overID string) (types.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Dragging {
		return types.Snapshot{}, false
	}
	dragged := c.dragged
	c.resetLocked()

	if overID == "" || overID == dragged {
		return types.Snapshot{}, false
	}
	order := c.store.Order()
	if !order.Contains(dragged) || !order.Contains(overID) {
		c.logger.Printf("[drag] discarding stale drop %s -> %s", dragged, overID)
		return types.Snapshot{}, false
	}
	return c.store.SetSectionOrder(Permute(order, dragged, overID)), true
}

// Cancel discards the drag in progress
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Status reports the session state and the preview for the last target
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := c.store.Order()
	if c.state != Dragging {
		return Status{State: Idle.String(), Preview: order}
	}
	return Status{
		State:   Dragging.String(),
		Dragged: c.dragged,
		Over:    c.over,
		Preview: Permute(order, c.dragged, c.over),
	}
}

// State returns the current session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) resetLocked() {
	c.state = Idle
	c.dragged = ""
	c.over = ""
}
