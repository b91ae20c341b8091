package ui

import (
	"time"

	"github.com/atomicstack/segmented-pager/internal/logging/events"
	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/theme"
)

// Apply implements pager.Host. It only records state; View derives the
// screen from it.
func (m *Model) Apply(cmd pager.Command) {
	if cmd == nil {
		return
	}
	events.Host.Command(cmd.Name())
	switch c := cmd.(type) {
	case pager.RenderButtons:
		m.applyButtons(c)
	case pager.PlaceIndicator:
		m.applyIndicator(c)
	case pager.SetScrollFraction:
		// a programmatic scroll supersedes any drag still waiting to settle
		m.settleSeq++
		d := time.Duration(0)
		if c.Animated {
			d = pager.AnimationDuration
		}
		m.strip.ScrollToFraction(c.Fraction, d)
	case pager.LayoutPages:
		m.pages = append(m.pages[:0], c.Pages...)
		m.strip.Resize(int(c.Viewport.Width), len(c.Pages))
	}
}

func (m *Model) applyButtons(c pager.RenderButtons) {
	m.buttons = append(m.buttons[:0], c.Buttons...)
	font := c.Font.Name
	if font == "system" {
		font = ""
	}
	m.normalButton = theme.ApplyFont(styles.Button.Foreground(theme.Color(c.NormalColor)), font)
	m.selectedButton = theme.ApplyFont(styles.SelectedButton.Foreground(theme.Color(c.SelectedColor)), font)
}

func (m *Model) applyIndicator(c pager.PlaceIndicator) {
	left, width := c.Geometry.Left, c.Geometry.Width
	if c.Geometry.Model == pager.GeometryInsets {
		left = c.Geometry.LeftInset
		// a zero right inset may be clamped; keep the frame width then
		if c.Geometry.RightInset > 0 {
			if w := float64(m.width) - c.Geometry.LeftInset - c.Geometry.RightInset; w > 0 {
				width = w
			}
		}
	}
	m.indicator.Color = c.Color
	m.indicator.Place(c.Index, left, width, c.Duration)
}
