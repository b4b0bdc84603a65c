package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/cubeshuffle/internal/core/settings"
	"github.com/colonyops/cubeshuffle/internal/core/styles"
	"github.com/colonyops/cubeshuffle/internal/tui/views/packs"
)

// ReviewOptions configures the review TUI.
type ReviewOptions struct {
	Session   *packs.Session
	Config    settings.Config
	CardWidth int
	Logger    zerolog.Logger
}

// ReviewModel is the top-level model for the pack review screen.
type ReviewModel struct {
	packsView packs.View
	config    settings.Config
	log       zerolog.Logger
	width     int
	height    int
	quitting  bool
}

// NewReview creates the review model.
func NewReview(opts ReviewOptions) ReviewModel {
	m := ReviewModel{
		config: opts.Config,
		log:    opts.Logger,
		width:  80,
		height: 24,
	}
	m.packsView = packs.New(opts.Session, opts.CardWidth)
	m.packsView.SetSize(m.width, m.height-lipgloss.Height(m.configLine()))
	return m
}

// Session returns the review session.
func (m ReviewModel) Session() *packs.Session {
	return m.packsView.Session()
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return m.packsView.Init()
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.packsView.SetSize(msg.Width, msg.Height-lipgloss.Height(m.configLine()))
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			checked, total := m.Session().Counts()
			m.log.Info().Int("checked", checked).Int("total", total).Msg("review closed")
			return m, tea.Quit
		}

	case packs.ToggleMsg:
		m.log.Debug().Int("index", msg.Index).Msg("toggle pack")
	}

	var cmd tea.Cmd
	m.packsView, cmd = m.packsView.Update(msg)
	return m, cmd
}

func (m ReviewModel) configLine() string {
	seed := m.config.Seed
	if seed == "" {
		seed = "(none)"
	}
	return styles.StatusStyle.Render(fmt.Sprintf("seed %s · pack size %d", seed, m.config.PackSize))
}

func (m ReviewModel) render() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.configLine(), m.packsView.View())
}

// View implements tea.Model.
func (m ReviewModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	if m.Session().Desktop() {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}
