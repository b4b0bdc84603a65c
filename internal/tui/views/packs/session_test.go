package packs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/core/zoom"
)

func testPacks(n int) []pack.Pack {
	out := make([]pack.Pack, n)
	for i := range out {
		out[i] = pack.New(
			pack.Entry{Name: "red", Count: uint(i + 1)},
			pack.Entry{Name: "blue", Count: 2},
		)
	}
	return out
}

func indices(slots []Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.Index
	}
	return out
}

func TestNewSession(t *testing.T) {
	packs := testPacks(3)
	s := NewSession(packs, false)

	require.Equal(t, 3, s.Len())
	for i, item := range s.Items() {
		assert.False(t, item.Checked)
		assert.True(t, packs[i].Equal(item.Pack))
	}
	assert.Equal(t, 1.0, s.Scale())
	assert.False(t, s.Desktop())
}

func TestDisplayOrder_CheckedSinks(t *testing.T) {
	s := NewSession(testPacks(3), false)
	s.ToggleChecked(1)

	assert.Equal(t, []int{0, 2, 1}, indices(s.DisplayOrder()))
	assert.Equal(t, []int{0, 1, 2}, indices(slotsOf(s.Items())), "backing order untouched")
}

func TestDisplayOrder_IsStableForEveryFlagPattern(t *testing.T) {
	const n = 5
	for mask := range 1 << n {
		s := NewSession(testPacks(n), false)
		for i := range n {
			if mask&(1<<i) != 0 {
				s.ToggleChecked(i)
			}
		}

		order := s.DisplayOrder()
		require.Len(t, order, n)

		var unchecked, checked []int
		for i, item := range s.Items() {
			if item.Checked {
				checked = append(checked, i)
			} else {
				unchecked = append(unchecked, i)
			}
		}
		want := append(unchecked, checked...)
		assert.Equal(t, want, indices(order), fmt.Sprintf("mask %05b", mask))

		for _, slot := range order {
			assert.Equal(t, s.Items()[slot.Index], slot.Item, "slot carries its own item")
		}
	}
}

func TestToggleChecked_TwiceRestores(t *testing.T) {
	s := NewSession(testPacks(2), false)

	assert.True(t, s.ToggleChecked(0))
	assert.True(t, s.Items()[0].Checked)

	assert.True(t, s.ToggleChecked(0), "second toggle is also a change")
	assert.False(t, s.Items()[0].Checked)
}

func TestToggleChecked_OutOfRangePanics(t *testing.T) {
	s := NewSession(testPacks(2), false)
	assert.Panics(t, func() { s.ToggleChecked(2) })
	assert.Panics(t, func() { s.ToggleChecked(-1) })
}

func TestCounts(t *testing.T) {
	s := NewSession(testPacks(4), false)
	s.ToggleChecked(0)
	s.ToggleChecked(3)

	checked, total := s.Counts()
	assert.Equal(t, 2, checked)
	assert.Equal(t, 4, total)
}

func TestApplyZoomDelta_RequiresDesktop(t *testing.T) {
	s := NewSession(testPacks(1), false)

	for _, d := range []float64{0.1, -0.1, 1, -5} {
		assert.False(t, s.ApplyZoomDelta(d))
		assert.False(t, s.HandleScroll(-d))
	}
	assert.Equal(t, 1.0, s.Scale())
}

func TestApplyZoomDelta_Desktop(t *testing.T) {
	s := NewSession(testPacks(1), true)

	for range 11 {
		s.ApplyZoomDelta(zoom.Step)
	}
	assert.Equal(t, 2.0, s.Scale())
	assert.False(t, s.ApplyZoomDelta(zoom.Step), "clamped, no change")

	assert.True(t, s.HandleScroll(120))
	assert.InDelta(t, 1.9, s.Scale(), 1e-9)

	assert.True(t, s.HandleScroll(-1))
	assert.InDelta(t, 2.0, s.Scale(), 1e-9)
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewSession(testPacks(1), false)
	items := s.Items()
	items[0].Checked = true

	assert.False(t, s.Items()[0].Checked)
}

func slotsOf(items []Item) []Slot {
	out := make([]Slot, len(items))
	for i, item := range items {
		out[i] = Slot{Index: i, Item: item}
	}
	return out
}
