package pager

// Size is the visible page area.
type Size struct {
	Width  float64
	Height float64
}

// ScrollMetrics is a snapshot of the horizontal scroll area reported by the
// host with every scroll event.
type ScrollMetrics struct {
	Offset        float64
	ContentWidth  float64
	ViewportWidth float64
}

// MaxOffset is the furthest the content can scroll.
func (m ScrollMetrics) MaxOffset() float64 {
	return m.ContentWidth - m.ViewportWidth
}

// Percentage maps the offset onto 0..100 of the scrollable distance. It
// reports false until layout has produced a positive scrollable range.
func (m ScrollMetrics) Percentage() (float64, bool) {
	maxOffset := m.MaxOffset()
	if maxOffset <= 0 {
		return 0, false
	}
	return (m.Offset / maxOffset) * hundredPercent, true
}
