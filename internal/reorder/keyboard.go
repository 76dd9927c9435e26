package reorder

import "github.com/jonathan/resume-builder/internal/types"

// Key is a normalized keyboard input for drag sessions
type Key int

// Keys understood by the keyboard adapter
const (
	KeyPickUp Key = iota // space or enter on an idle handle
	KeyUp
	KeyDown
	KeyDrop // space or enter while dragging
	KeyEscape
)

// KeyboardAdapter moves the dragged section one position per arrow press.
// It produces the same start/move/drop/cancel events as a pointer drag.
//
// It is not safe for concurrent use; it belongs to one view.
type KeyboardAdapter struct {
	controller *Controller
	active     bool
	dragged    string
	overIndex  int
}

// NewKeyboardAdapter creates a keyboard adapter for c
func NewKeyboardAdapter(c *Controller) *KeyboardAdapter {
	return &KeyboardAdapter{controller: c}
}

// Press handles key while focusedID is the focused section handle. It
// returns the preview order and, for a committing drop, true.
func (k *KeyboardAdapter) Press(key Key, focusedID string) (types.SectionOrder, bool) {
	order := k.controller.store.Order()
	if k.active {
		if k.controller.Status().Dragged != k.dragged {
			// another drag took over the controller
			k.active, k.dragged = false, ""
			return order, false
		}
		if !order.Contains(k.dragged) {
			k.active, k.dragged = false, ""
			k.controller.Cancel()
			return order, false
		}
		k.overIndex = min(max(k.overIndex, 0), len(order)-1)
	}

	switch key {
	case KeyPickUp:
		if k.active {
			return k.drop(order)
		}
		if !k.controller.Start(focusedID) {
			return order, false
		}
		k.active = true
		k.dragged = focusedID
		k.overIndex = order.Index(focusedID)
		return order, false

	case KeyUp, KeyDown:
		if !k.active {
			return order, false
		}
		if key == KeyUp {
			k.overIndex = max(k.overIndex-1, 0)
		} else {
			k.overIndex = min(k.overIndex+1, len(order)-1)
		}
		return k.controller.Move(order[k.overIndex].ID), false

	case KeyDrop:
		if !k.active {
			return order, false
		}
		return k.drop(order)

	case KeyEscape:
		k.active = false
		k.dragged = ""
		k.controller.Cancel()
		return order, false
	}
	return order, false
}

func (k *KeyboardAdapter) drop(order types.SectionOrder) (types.SectionOrder, bool) {
	k.active = false
	k.dragged = ""
	over := ""
	if k.overIndex >= 0 && k.overIndex < len(order) {
		over = order[k.overIndex].ID
	}
	snap, committed := k.controller.Drop(over)
	if !committed {
		return k.controller.store.Order(), false
	}
	return snap.SectionOrder, true
}
