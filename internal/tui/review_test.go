package tui

import (
	"bytes"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/core/settings"
	"github.com/colonyops/cubeshuffle/internal/tui/views/packs"
	"github.com/colonyops/cubeshuffle/pkg/tuitest"
)

func newTestReview(desktop bool, logs *bytes.Buffer) ReviewModel {
	session := packs.NewSession([]pack.Pack{
		pack.New(pack.Entry{Name: "red", Count: 2}),
		pack.New(pack.Entry{Name: "blue", Count: 1}),
	}, desktop)

	cfg := settings.Default()
	cfg.Seed = "abc"

	return NewReview(ReviewOptions{
		Session:   session,
		Config:    cfg,
		CardWidth: packs.DefaultCardWidth,
		Logger:    zerolog.New(logs),
	})
}

func update(t *testing.T, m ReviewModel, msg tea.Msg) (ReviewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(ReviewModel)
	require.True(t, ok)
	return rm, cmd
}

func TestReview_QuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{tuitest.KeyPress('q'), tuitest.CtrlC()} {
		var logs bytes.Buffer
		m := newTestReview(false, &logs)

		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.render())
		assert.Contains(t, logs.String(), "review closed")
	}
}

func TestReview_ForwardsToPacksView(t *testing.T) {
	var logs bytes.Buffer
	m := newTestReview(false, &logs)

	m, cmd := update(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.True(t, m.Session().Items()[0].Checked)
}

func TestReview_ViewModes(t *testing.T) {
	var logs bytes.Buffer

	m := newTestReview(false, &logs)
	m, _ = update(t, m, tuitest.WindowSize(120, 40))
	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeNone, v.MouseMode)

	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "seed abc · pack size 15")
	assert.Contains(t, out, "0/2 reviewed")

	m = newTestReview(true, &logs)
	assert.Equal(t, tea.MouseModeCellMotion, m.View().MouseMode)
}
