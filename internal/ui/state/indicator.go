package state

import (
	"math"
	"time"
)

// Indicator is the animated underline under the selected button, tracked as
// a left edge and a width in cells.
type Indicator struct {
	left   Tween
	width  Tween
	placed bool
	Index  int
	Color  string
}

// Place moves the indicator. The first placement always applies immediately
// so the underline does not grow out of column zero.
func (i *Indicator) Place(index int, left, width float64, d time.Duration) {
	i.Index = index
	if !i.placed {
		d = 0
		i.placed = true
	}
	i.left.Start(left, d)
	i.width.Start(width, d)
}

// Placed reports whether the indicator has a position yet.
func (i *Indicator) Placed() bool { return i.placed }

// Step advances the animation and reports whether it is still running.
func (i *Indicator) Step(dt time.Duration) bool {
	l := i.left.Step(dt)
	w := i.width.Step(dt)
	return l || w
}

// Animating reports whether a move is in flight.
func (i *Indicator) Animating() bool {
	return i.left.Active() || i.width.Active()
}

// Bounds returns the current left edge and width rounded to cells.
func (i *Indicator) Bounds() (int, int) {
	left := int(math.Round(i.left.Value()))
	width := int(math.Round(i.width.Value()))
	if left < 0 {
		left = 0
	}
	if width < 0 {
		width = 0
	}
	return left, width
}

// Target returns where the indicator is heading.
func (i *Indicator) Target() (float64, float64) {
	return i.left.To, i.width.To
}
