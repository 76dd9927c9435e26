package reorder

import "github.com/jonathan/resume-builder/internal/types"

// Point is a pointer position in view coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the rendered bounding box of a section row
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Region ties a section reference to where it is rendered
type Region struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
}

// ResolveTarget returns the id of the region whose center is nearest p.
// Regions must be given in render order; on equal distance the earliest
// region wins. It returns "" when there are no regions.
func ResolveTarget(p Point, regions []Region) string {
	best := ""
	bestDist := 0.0
	for i, region := range regions {
		c := region.Rect.Center()
		dx, dy := c.X-p.X, c.Y-p.Y
		dist := dx*dx + dy*dy
		if i == 0 || dist < bestDist {
			best, bestDist = region.ID, dist
		}
	}
	return best
}

// StackedLayout lays order out as full-width rows of equal height, the
// way a single-column editor renders it
func StackedLayout(order types.SectionOrder, width, rowHeight float64) []Region {
	regions := make([]Region, len(order))
	for i, ref := range order {
		regions[i] = Region{ID: ref.ID, Rect: Rect{Y: float64(i) * rowHeight, Width: width, Height: rowHeight}}
	}
	return regions
}

// Locate returns the center of the region rendered for id
func Locate(regions []Region, id string) (Point, bool) {
	for _, region := range regions {
		if region.ID == id {
			return region.Rect.Center(), true
		}
	}
	return Point{}, false
}

// PointerAdapter feeds pointer gestures into a Controller. A press only
// starts a drag once the pointer has travelled the activation distance,
// so plain clicks on a drag handle never start a session.
//
// It is not safe for concurrent use; it belongs to one view.
type PointerAdapter struct {
	controller *Controller
	regions    []Region
	activation float64

	pressed string
	origin  Point
	active  bool
}

// NewPointerAdapter creates a pointer adapter with the given activation distance
func NewPointerAdapter(c *Controller, activation float64) *PointerAdapter {
	return &PointerAdapter{controller: c, activation: activation}
}

// SetLayout replaces the rendered regions, in render order
func (a *PointerAdapter) SetLayout(regions []Region) {
	a.regions = append([]Region{}, regions...)
}

// Down records a press on the drag handle of section id
func (a *PointerAdapter) Down(id string, at Point) {
	if a.active {
		a.controller.Cancel()
	}
	a.pressed, a.origin, a.active = id, at, false
}

// MoveTo reports pointer movement and returns the live preview
func (a *PointerAdapter) MoveTo(at Point) types.SectionOrder {
	if a.pressed == "" {
		return a.controller.store.Order()
	}
	if !a.active {
		dx, dy := at.X-a.origin.X, at.Y-a.origin.Y
		if dx*dx+dy*dy < a.activation*a.activation {
			return a.controller.store.Order()
		}
		if !a.controller.Start(a.pressed) {
			a.pressed = ""
			return a.controller.store.Order()
		}
		a.active = true
	}
	return a.controller.Move(ResolveTarget(at, a.regions))
}

// Up releases the pointer and drops on the nearest region
func (a *PointerAdapter) Up(at Point) (types.Snapshot, bool) {
	active := a.active
	a.pressed, a.active = "", false
	if !active {
		return types.Snapshot{}, false
	}
	return a.controller.Drop(ResolveTarget(at, a.regions))
}

// Escape cancels the drag in progress
func (a *PointerAdapter) Escape() {
	a.pressed, a.active = "", false
	a.controller.Cancel()
}
