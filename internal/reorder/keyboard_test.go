package reorder

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardAdapter_MoveAndDrop(t *testing.T) {
	s, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "experience")
	assert.Equal(t, Dragging, c.State())

	preview, _ := k.Press(KeyDown, "")
	assert.Equal(t, []string{"personalInfo", "skills", "education", "experience", "customSection-1"}, preview.IDs())

	order, committed := k.Press(KeyDrop, "")
	require.True(t, committed)
	assert.Equal(t, preview.IDs(), order.IDs())
	assert.Equal(t, preview.IDs(), s.Order().IDs())
}

func TestKeyboardAdapter_ClampsAtEnds(t *testing.T) {
	_, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "skills")
	k.Press(KeyUp, "")
	preview, _ := k.Press(KeyUp, "")
	assert.Equal(t, []string{"skills", "personalInfo", "experience", "education", "customSection-1"}, preview.IDs())

	for range 10 {
		preview, _ = k.Press(KeyDown, "")
	}
	assert.Equal(t, []string{"personalInfo", "experience", "education", "customSection-1", "skills"}, preview.IDs())
}

func TestKeyboardAdapter_PickUpTogglesDrop(t *testing.T) {
	s, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "education")
	k.Press(KeyUp, "")
	_, committed := k.Press(KeyPickUp, "")
	require.True(t, committed)
	assert.Equal(t, []string{"personalInfo", "skills", "education", "experience", "customSection-1"}, s.Order().IDs())
}

func TestKeyboardAdapter_DropInPlaceDoesNotCommit(t *testing.T) {
	s, c := newFixture(t)
	k := NewKeyboardAdapter(c)
	var notified int
	s.Subscribe(func(_ types.Snapshot) { notified++ })

	k.Press(KeyPickUp, "skills")
	k.Press(KeyDown, "")
	k.Press(KeyUp, "")
	_, committed := k.Press(KeyDrop, "")
	assert.False(t, committed)
	assert.Zero(t, notified)
}

func TestKeyboardAdapter_Escape(t *testing.T) {
	s, c := newFixture(t)
	before := s.Order().IDs()
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "personalInfo")
	k.Press(KeyDown, "")
	k.Press(KeyDown, "")
	k.Press(KeyEscape, "")

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, before, s.Order().IDs())

	_, committed := k.Press(KeyDrop, "")
	assert.False(t, committed)
}

func TestKeyboardAdapter_ArrowsIgnoredWhenIdle(t *testing.T) {
	s, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	order, committed := k.Press(KeyDown, "skills")
	assert.False(t, committed)
	assert.Equal(t, s.Order().IDs(), order.IDs())
	assert.Equal(t, Idle, c.State())
}

func TestKeyboardAdapter_OrderShrinksMidDrag(t *testing.T) {
	s, c := newFixture(t)
	_, extra := s.AddCustomSection("Talks")
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "skills")
	for range 10 {
		k.Press(KeyDown, "")
	}
	s.RemoveCustomSection("1")
	s.RemoveCustomSection(extra)

	var preview types.SectionOrder
	assert.NotPanics(t, func() { preview, _ = k.Press(KeyUp, "") })
	assert.Equal(t, []string{"personalInfo", "experience", "skills", "education"}, preview.IDs())

	_, committed := k.Press(KeyDrop, "")
	require.True(t, committed)
	assert.Equal(t, []string{"personalInfo", "experience", "skills", "education"}, s.Order().IDs())
}

func TestKeyboardAdapter_DraggedSectionRemovedMidDrag(t *testing.T) {
	s, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "customSection-1")
	k.Press(KeyUp, "")
	s.RemoveCustomSection("1")

	var committed bool
	assert.NotPanics(t, func() { _, committed = k.Press(KeyDown, "") })
	assert.False(t, committed)
	assert.Equal(t, Idle, c.State())

	_, committed = k.Press(KeyDrop, "")
	assert.False(t, committed)
	assert.Equal(t, []string{"personalInfo", "skills", "experience", "education"}, s.Order().IDs())
}

func TestKeyboardAdapter_YieldsToNewerDrag(t *testing.T) {
	_, c := newFixture(t)
	k := NewKeyboardAdapter(c)

	k.Press(KeyPickUp, "skills")
	require.True(t, c.Start("education"))

	_, committed := k.Press(KeyDown, "")
	assert.False(t, committed)
	assert.Equal(t, Dragging, c.State())
	assert.Equal(t, "education", c.Status().Dragged)
}
