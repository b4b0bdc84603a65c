package packs

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/cubeshuffle/internal/core/styles"
	"github.com/colonyops/cubeshuffle/internal/core/zoom"
)

// DefaultCardWidth is the unzoomed card width in cells.
const DefaultCardWidth = 22

const cardGap = 1

// View is the Bubble Tea sub-model for the pack review grid. Every change to
// review state goes through ToggleMsg or ZoomMsg so that key presses, wheel
// events and card activation all land in one place.
type View struct {
	session   *Session
	keys      KeyMap
	help      help.Model
	baseWidth int

	cursor int // position in the display order
	width  int
	height int
}

// New creates a packs view over session.
func New(session *Session, baseWidth int) View {
	if baseWidth <= 0 {
		baseWidth = DefaultCardWidth
	}

	h := help.New()
	h.Styles.ShortKey = styles.TextMutedStyle
	h.Styles.ShortDesc = styles.TextMutedStyle
	h.Styles.ShortSeparator = styles.TextMutedStyle
	h.ShortSeparator = " • "

	return View{
		session:   session,
		keys:      DefaultKeyMap().withZoom(session.Desktop()),
		help:      h,
		baseWidth: baseWidth,
		width:     80,
		height:    24,
	}
}

func (v View) Init() tea.Cmd {
	return nil
}

// Session returns the session backing the view.
func (v View) Session() *Session {
	return v.session
}

// SetSize updates the available area.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the slot under the cursor.
func (v View) Selected() (Slot, bool) {
	order := v.session.DisplayOrder()
	if len(order) == 0 {
		return Slot{}, false
	}
	return order[v.clampCursor(v.cursor)], true
}

func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		v.session.ToggleChecked(msg.Index)
		return v, nil

	case ZoomMsg:
		v.session.ApplyZoomDelta(msg.Delta)
		return v, nil

	case tea.MouseWheelMsg:
		if !v.session.Desktop() {
			return v, nil
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			return v, zoomCmd(zoom.StepForScroll(-1))
		case tea.MouseWheelDown:
			return v, zoomCmd(zoom.StepForScroll(1))
		}
		return v, nil

	case tea.KeyPressMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v View) handleKey(msg tea.KeyPressMsg) (View, tea.Cmd) {
	n := v.session.Len()
	if n == 0 {
		return v, nil
	}

	cols := v.columns()
	switch {
	case key.Matches(msg, v.keys.Left):
		v.cursor = v.clampCursor(v.cursor - 1)
	case key.Matches(msg, v.keys.Right):
		v.cursor = v.clampCursor(v.cursor + 1)
	case key.Matches(msg, v.keys.Up):
		if v.cursor-cols >= 0 {
			v.cursor -= cols
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor+cols < n {
			v.cursor += cols
		}
	case key.Matches(msg, v.keys.Toggle):
		slot, ok := v.Selected()
		if !ok {
			return v, nil
		}
		return v, v.card(slot, true).Activate()
	case key.Matches(msg, v.keys.ZoomIn):
		return v, zoomCmd(zoom.Step)
	case key.Matches(msg, v.keys.ZoomOut):
		return v, zoomCmd(-zoom.Step)
	}

	return v, nil
}

func (v View) clampCursor(c int) int {
	return min(max(c, 0), max(v.session.Len()-1, 0))
}

func (v View) card(slot Slot, selected bool) Card {
	return Card{
		Slot:      slot,
		Selected:  selected,
		Zoom:      v.session.Zoom(),
		BaseWidth: v.baseWidth,
	}
}

// columns is how many cards fit side by side at the current zoom.
func (v View) columns() int {
	w := v.session.Zoom().Width(v.baseWidth) + cardGap
	return max(v.width/w, 1)
}

// visibleRows is how many grid rows fit, given a rendered row height.
func (v View) visibleRows(rowHeight int) int {
	chrome := lipgloss.Height(v.header()) + lipgloss.Height(v.footer())
	return max((v.height-chrome)/max(rowHeight, 1), 1)
}

func (v View) View() string {
	if v.session.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.header(),
			styles.EmptyStyle.Render("No packs to review."),
		)
	}

	order := v.session.DisplayOrder()
	cursor := v.clampCursor(v.cursor)
	cols := v.columns()

	var rows []string
	for start := 0; start < len(order); start += cols {
		end := min(start+cols, len(order))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered := v.card(order[i], i == cursor).Render()
			if i < end-1 {
				rendered = lipgloss.NewStyle().MarginRight(cardGap).Render(rendered)
			}
			cards = append(cards, rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	rowHeight := 0
	for _, r := range rows {
		rowHeight = max(rowHeight, lipgloss.Height(r))
	}
	visible := v.visibleRows(rowHeight)

	// Rows scroll so the cursor row is always on screen.
	offset := max(cursor/cols-visible+1, 0)
	end := min(offset+visible, len(rows))

	return lipgloss.JoinVertical(lipgloss.Left,
		v.header(),
		strings.Join(rows[offset:end], "\n"),
		v.footer(),
	)
}

func (v View) header() string {
	title := styles.TitleBarStyle.Render("Packs")
	if !v.session.Desktop() {
		return title
	}
	tag := styles.ZoomTagStyle.Render(fmt.Sprintf("Zoom: %d%% (use mouse wheel)", v.session.Zoom().Percent()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", tag)
}

func (v View) footer() string {
	checked, total := v.session.Counts()
	status := styles.StatusStyle.Render(fmt.Sprintf("%d/%d reviewed", checked, total))
	return lipgloss.JoinVertical(lipgloss.Left, status, v.help.View(v.keys))
}
