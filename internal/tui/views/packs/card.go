package packs

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/colonyops/cubeshuffle/internal/core/styles"
	"github.com/colonyops/cubeshuffle/internal/core/zoom"
)

const (
	doneLabel   = "Done"
	deleteLabel = "✕"
)

// Card renders one pack. It holds no state of its own and never mutates the
// session; activating it yields a ToggleMsg carrying the slot index.
type Card struct {
	Slot      Slot
	Selected  bool
	Zoom      zoom.Model
	BaseWidth int
}

// Width is the rendered width of the card at the current zoom.
func (c Card) Width() int {
	return c.Zoom.Width(c.BaseWidth)
}

// Activate returns the command that reports a click on this card.
func (c Card) Activate() tea.Cmd {
	return toggleCmd(c.Slot.Index)
}

// Render draws the card: a header with the slot number and the done marker,
// followed by the pile table sorted by pile name.
func (c Card) Render() string {
	width := c.Width()
	pad := c.Zoom.Width(1)

	frame := styles.CardStyle
	if c.Selected {
		frame = styles.CardSelectedStyle
	}
	frame = frame.Width(width).Padding(0, pad)
	inner := max(width-frame.GetHorizontalFrameSize(), 1)

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		c.header(inner),
		c.body(inner),
	))
}

func (c Card) header(width int) string {
	checked := c.Slot.Item.Checked

	headerStyle := styles.CardHeaderStyle
	marker := styles.CardDoneButtonStyle.Render(doneLabel)
	if checked {
		headerStyle = styles.CardHeaderCheckedStyle
		marker = styles.CardDeleteStyle.Render(deleteLabel)
	}

	slot := styles.CardSlotStyle.Render(strconv.Itoa(c.Slot.Index + 1))
	gap := max(width-lipgloss.Width(slot)-lipgloss.Width(marker), 1)

	return headerStyle.Width(width).Render(slot + lipgloss.NewStyle().Width(gap).Render("") + marker)
}

func (c Card) body(width int) string {
	entries := c.Slot.Item.Pack.Sorted()
	if len(entries) == 0 {
		return styles.EmptyStyle.Render("no piles")
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, strconv.FormatUint(uint64(e.Count), 10)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.CardTableBorderStyle).
		BorderRow(false).
		Width(width).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(entries) {
				return lipgloss.NewStyle()
			}
			s := styles.PileRowStyle(entries[row].Name)
			if col == 0 {
				return s.Bold(true)
			}
			return s.Align(lipgloss.Right)
		})

	return t.String()
}
