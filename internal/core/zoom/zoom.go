// Package zoom holds the clamped display scale shared by every card on the
// review screen.
package zoom

import "math"

const (
	Min     = 0.5
	Max     = 2.0
	Step    = 0.1
	Initial = 1.0
)

// Model is a display scale within [Min, Max]. The zero value is not ready
// for use; call New.
type Model struct {
	scale float64
}

func New() Model {
	return Model{scale: Initial}
}

// Scale returns the current scale.
func (m Model) Scale() float64 {
	return m.scale
}

// ApplyDelta moves the scale by delta and clamps the result. changed is
// false when the scale did not move, which happens at either boundary and
// for non-finite deltas.
func (m *Model) ApplyDelta(delta float64) (scale float64, changed bool) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return m.scale, false
	}

	next := min(max(m.scale+delta, Min), Max)
	if next == m.scale {
		return m.scale, false
	}
	m.scale = next
	return m.scale, true
}

// StepForScroll maps a vertical scroll offset to a zoom step. Only the sign
// is used: scrolling up (dy < 0) zooms in.
func StepForScroll(dy float64) float64 {
	if dy < 0 {
		return Step
	}
	return -Step
}

// FontSize scales a base size by the current scale.
func (m Model) FontSize(base float64) float64 {
	return base * m.scale
}

// Width scales a cell width, rounding to the nearest cell and never going
// below one.
func (m Model) Width(base int) int {
	return max(int(math.Round(float64(base)*m.scale)), 1)
}

// Percent is the scale as a rounded percentage, e.g. 110 for 1.1.
func (m Model) Percent() int {
	return int(math.Round(m.scale * 100))
}
