package packs

import (
	"fmt"
	"slices"

	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/core/zoom"
)

// Item is a pack under review together with its checked flag.
type Item struct {
	Pack    pack.Pack
	Checked bool
}

// Slot pairs an item with its index in the session's backing list. The
// index is what toggles address and what the card shows as its number.
type Slot struct {
	Index int
	Item  Item
}

// Session owns the review state for one run of the screen. It contains pure
// state logic with no Bubble Tea dependencies.
type Session struct {
	items   []Item
	zoom    zoom.Model
	desktop bool
}

// NewSession creates a session over packs in the given order, all unchecked.
// desktop is the host capability, resolved once by the caller.
func NewSession(packs []pack.Pack, desktop bool) *Session {
	items := make([]Item, len(packs))
	for i, p := range packs {
		items[i] = Item{Pack: p}
	}
	return &Session{
		items:   items,
		zoom:    zoom.New(),
		desktop: desktop,
	}
}

// ToggleChecked flips the checked flag of the item at index and always
// reports a change. index must come from this session's own slots.
func (s *Session) ToggleChecked(index int) bool {
	if index < 0 || index >= len(s.items) {
		panic(fmt.Sprintf("packs: toggle index %d out of range [0,%d)", index, len(s.items)))
	}
	s.items[index].Checked = !s.items[index].Checked
	return true
}

// ApplyZoomDelta moves the zoom scale by delta. It is a no-op reporting
// false when the session is not running in the desktop shell.
func (s *Session) ApplyZoomDelta(delta float64) bool {
	if !s.desktop {
		return false
	}
	_, changed := s.zoom.ApplyDelta(delta)
	return changed
}

// HandleScroll converts a vertical scroll offset into a fixed zoom step.
func (s *Session) HandleScroll(dy float64) bool {
	return s.ApplyZoomDelta(zoom.StepForScroll(dy))
}

// DisplayOrder returns every item paired with its index, unchecked items
// first. Items with the same checked value keep their relative order. The
// backing list is not modified.
func (s *Session) DisplayOrder() []Slot {
	slots := make([]Slot, len(s.items))
	for i, item := range s.items {
		slots[i] = Slot{Index: i, Item: item}
	}
	slices.SortStableFunc(slots, func(a, b Slot) int {
		return checkedRank(a.Item.Checked) - checkedRank(b.Item.Checked)
	})
	return slots
}

func checkedRank(checked bool) int {
	if checked {
		return 1
	}
	return 0
}

// Items returns a copy of the items in their original order.
func (s *Session) Items() []Item {
	return slices.Clone(s.items)
}

// Len returns the number of packs under review.
func (s *Session) Len() int {
	return len(s.items)
}

// Counts returns how many items are checked and the total.
func (s *Session) Counts() (checked, total int) {
	for _, item := range s.items {
		if item.Checked {
			checked++
		}
	}
	return checked, len(s.items)
}

func (s *Session) Desktop() bool {
	return s.desktop
}

// Zoom returns a copy of the zoom model for read-only use.
func (s *Session) Zoom() zoom.Model {
	return s.zoom
}

func (s *Session) Scale() float64 {
	return s.zoom.Scale()
}
