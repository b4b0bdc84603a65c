package packs

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cubeshuffle/pkg/tuitest"
)

// send applies msg and then feeds back any message its command produces,
// the way the Bubble Tea runtime would.
func send(t *testing.T, v View, msg tea.Msg) View {
	t.Helper()
	v, cmd := v.Update(msg)
	if next := tuitest.Exec(cmd); next != nil {
		v, cmd = v.Update(next)
		require.Nil(t, cmd)
	}
	return v
}

func newTestView(n int, desktop bool) View {
	v := New(NewSession(testPacks(n), desktop), DefaultCardWidth)
	v.SetSize(200, 60)
	return v
}

func TestView_EnterTogglesSelected(t *testing.T) {
	v := newTestView(3, false)

	v = send(t, v, tuitest.KeyRight())
	slot, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, slot.Index)

	v = send(t, v, tuitest.KeyEnter())
	assert.True(t, v.Session().Items()[1].Checked)
	assert.Equal(t, []int{0, 2, 1}, indices(v.Session().DisplayOrder()))

	// The cursor stays in place, so the next pack slid under it.
	slot, _ = v.Selected()
	assert.Equal(t, 2, slot.Index)
}

func TestView_SpaceTogglesBack(t *testing.T) {
	v := newTestView(2, false)

	v = send(t, v, tuitest.KeySpace())
	assert.True(t, v.Session().Items()[0].Checked)

	v = send(t, v, tuitest.KeyRight())
	v = send(t, v, tuitest.KeySpace())
	assert.False(t, v.Session().Items()[0].Checked)
}

func TestView_ToggleGoesThroughMessage(t *testing.T) {
	v := newTestView(2, false)

	v, cmd := v.Update(tuitest.KeyEnter())
	assert.False(t, v.Session().Items()[0].Checked, "key press alone does not mutate")
	assert.Equal(t, ToggleMsg{Index: 0}, tuitest.Exec(cmd))
}

func TestView_WheelIgnoredWithoutDesktop(t *testing.T) {
	v := newTestView(1, false)

	v, cmd := v.Update(tuitest.WheelUp())
	assert.Nil(t, cmd)
	v = send(t, v, tuitest.KeyPress('+'))
	assert.Equal(t, 1.0, v.Session().Scale())

	out := tuitest.StripANSI(v.View())
	assert.NotContains(t, out, "Zoom:")
}

func TestView_WheelZoomsOnDesktop(t *testing.T) {
	v := newTestView(1, true)

	v = send(t, v, tuitest.WheelUp())
	v = send(t, v, tuitest.WheelUp())
	assert.InDelta(t, 1.2, v.Session().Scale(), 1e-9)
	assert.Contains(t, tuitest.StripANSI(v.View()), "Zoom: 120% (use mouse wheel)")

	v = send(t, v, tuitest.WheelDown())
	v = send(t, v, tuitest.KeyPress('-'))
	assert.InDelta(t, 1.0, v.Session().Scale(), 1e-9)
}

func TestView_NavigationClamps(t *testing.T) {
	v := newTestView(3, false)

	v = send(t, v, tuitest.KeyLeft())
	slot, _ := v.Selected()
	assert.Equal(t, 0, slot.Index)

	for range 5 {
		v = send(t, v, tuitest.KeyRight())
	}
	slot, _ = v.Selected()
	assert.Equal(t, 2, slot.Index)
}

func TestView_DownMovesByRow(t *testing.T) {
	v := New(NewSession(testPacks(6), false), DefaultCardWidth)
	v.SetSize(50, 80) // two cards per row

	v = send(t, v, tuitest.KeyDown())
	slot, _ := v.Selected()
	assert.Equal(t, 2, slot.Index)

	v = send(t, v, tuitest.KeyPress('k'))
	slot, _ = v.Selected()
	assert.Equal(t, 0, slot.Index)
}

func TestView_RendersStatusAndCards(t *testing.T) {
	v := newTestView(3, false)
	v = send(t, v, ToggleMsg{Index: 0})

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Packs")
	assert.Contains(t, out, "1/3 reviewed")
	assert.Contains(t, out, doneLabel)
	assert.Contains(t, out, deleteLabel)
}

func TestView_Empty(t *testing.T) {
	v := newTestView(0, false)
	v = send(t, v, tuitest.KeyEnter())

	_, ok := v.Selected()
	assert.False(t, ok)
	assert.Contains(t, tuitest.StripANSI(v.View()), "No packs to review.")
}
