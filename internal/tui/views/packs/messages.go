package packs

import tea "charm.land/bubbletea/v2"

// ToggleMsg asks the session to flip the checked flag at Index.
type ToggleMsg struct {
	Index int
}

// ZoomMsg asks the session to move the zoom scale by Delta.
type ZoomMsg struct {
	Delta float64
}

func toggleCmd(index int) tea.Cmd {
	return func() tea.Msg { return ToggleMsg{Index: index} }
}

func zoomCmd(delta float64) tea.Cmd {
	return func() tea.Msg { return ZoomMsg{Delta: delta} }
}
