package state

import (
	"math"
	"time"

	"github.com/atomicstack/segmented-pager/internal/pager"
)

// Strip tracks the horizontal offset of the page strip: pages laid side by
// side, each one viewport wide, seen through a single-viewport window.
type Strip struct {
	offset       Tween
	viewport     int
	pages        int
	decelerating bool
}

// Resize updates the viewport width and page count and clamps the offset.
func (s *Strip) Resize(viewport, pages int) {
	if viewport < 0 {
		viewport = 0
	}
	if pages < 0 {
		pages = 0
	}
	s.viewport = viewport
	s.pages = pages
	s.offset.Set(s.clamp(s.offset.Value()))
	s.decelerating = false
}

// Viewport returns the viewport width in cells.
func (s *Strip) Viewport() int { return s.viewport }

// Pages returns the page count.
func (s *Strip) Pages() int { return s.pages }

// ContentWidth returns the width of all pages together.
func (s *Strip) ContentWidth() int { return s.viewport * s.pages }

// MaxOffset returns the furthest scroll position.
func (s *Strip) MaxOffset() int {
	if m := s.ContentWidth() - s.viewport; m > 0 {
		return m
	}
	return 0
}

// Offset returns the current offset.
func (s *Strip) Offset() float64 { return s.offset.Value() }

// Cell returns the current offset rounded to a whole cell.
func (s *Strip) Cell() int { return int(math.Round(s.offset.Value())) }

// Drag moves the strip by delta cells, cancelling any animation. It returns
// the new offset.
func (s *Strip) Drag(delta float64) float64 {
	s.decelerating = false
	s.offset.Set(s.clamp(s.offset.Value() + delta))
	return s.offset.Value()
}

// ScrollToFraction scrolls so that fraction of the content lies left of the
// viewport.
func (s *Strip) ScrollToFraction(fraction float64, d time.Duration) {
	s.decelerating = false
	s.offset.Start(s.clamp(fraction*float64(s.ContentWidth())), d)
}

// NearestPage returns the page closest to the current offset.
func (s *Strip) NearestPage() int {
	if s.viewport <= 0 || s.pages == 0 {
		return 0
	}
	page := int(math.Round(s.offset.Value() / float64(s.viewport)))
	if page < 0 {
		page = 0
	}
	if page > s.pages-1 {
		page = s.pages - 1
	}
	return page
}

// Snap starts decelerating towards the nearest page boundary. It reports
// false when the strip already rests on one.
func (s *Strip) Snap(d time.Duration) bool {
	target := float64(s.NearestPage() * s.viewport)
	if math.Abs(target-s.offset.Value()) < 0.5 {
		s.offset.Set(target)
		s.decelerating = false
		return false
	}
	s.offset.Start(target, d)
	s.decelerating = true
	return true
}

// Decelerating reports whether a snap is in flight.
func (s *Strip) Decelerating() bool { return s.decelerating }

// Animating reports whether the offset is moving.
func (s *Strip) Animating() bool { return s.offset.Active() }

// Step advances the animation. settled is true on the frame a snap comes to
// rest.
func (s *Strip) Step(dt time.Duration) (moving bool, settled bool) {
	if !s.offset.Active() {
		return false, false
	}
	moving = s.offset.Step(dt)
	if !moving && s.decelerating {
		s.decelerating = false
		settled = true
	}
	return moving, settled
}

// Metrics reports the strip the way the pager expects scroll events.
func (s *Strip) Metrics() pager.ScrollMetrics {
	return pager.ScrollMetrics{
		Offset:        s.offset.Value(),
		ContentWidth:  float64(s.ContentWidth()),
		ViewportWidth: float64(s.viewport),
	}
}

func (s *Strip) clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if limit := float64(s.MaxOffset()); v > limit {
		return limit
	}
	return v
}
