package pager

import "time"

// Command is a declarative layout or animation request for the host.
type Command interface {
	Name() string
}

// Host renders commands emitted by a Pager. Commands are fire-and-forget;
// a later command for the same target supersedes an earlier one.
type Host interface {
	Apply(cmd Command)
}

// HostFunc adapts a function to Host.
type HostFunc func(Command)

// Apply calls f(cmd).
func (f HostFunc) Apply(cmd Command) { f(cmd) }

// Frame is a horizontal span in control coordinates.
type Frame struct {
	Left  float64
	Width float64
}

// Right returns the right edge.
func (f Frame) Right() float64 { return f.Left + f.Width }

// ButtonState describes one button as it should be drawn.
type ButtonState struct {
	ID       ButtonID
	Index    int
	Label    string
	Selected bool
	Frame    Frame
}

// RenderButtons rebuilds the button row.
type RenderButtons struct {
	Buttons       []ButtonState
	Font          Font
	NormalColor   string
	SelectedColor string
	Spacing       float64
	Insets        Insets
}

func (RenderButtons) Name() string { return "render-buttons" }

// IndicatorGeometry is the indicator target. Under GeometryFrame Left and
// Width are meaningful; under GeometryInsets LeftInset and RightInset are.
// Both are always filled so hosts may use either.
type IndicatorGeometry struct {
	Model      GeometryModel
	Left       float64
	Width      float64
	LeftInset  float64
	RightInset float64
}

// PlaceIndicator moves the underline under the button at Index. A zero
// Duration means apply immediately.
type PlaceIndicator struct {
	Index    int
	Geometry IndicatorGeometry
	Color    string
	Duration time.Duration
}

func (PlaceIndicator) Name() string { return "place-indicator" }

// Animated reports whether the move carries a transition.
func (c PlaceIndicator) Animated() bool { return c.Duration > 0 }

// SetScrollFraction scrolls the page area so that Fraction of the total
// content width lies left of the viewport.
type SetScrollFraction struct {
	Index    int
	Fraction float64
	Animated bool
}

func (SetScrollFraction) Name() string { return "set-scroll-fraction" }

// PageFrame positions one page in the content strip.
type PageFrame struct {
	Index          int
	Page           Page
	OffsetFraction float64
	WidthFraction  float64
}

// LayoutPages lays pages out contiguously, one viewport wide each.
type LayoutPages struct {
	Pages    []PageFrame
	Viewport Size
}

func (LayoutPages) Name() string { return "layout-pages" }
