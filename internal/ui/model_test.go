package ui

import (
	"errors"
	"math"
	"testing"

	"github.com/atomicstack/segmented-pager/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestHarness builds the demo screen at 60x12: buttons at 0+7, 9+8,
// 19+7, 28+6 and 36+6, a 60-cell viewport over five pages.
func newTestHarness(t *testing.T, mutate func(*Options)) *Harness {
	t.Helper()
	opts := Options{
		Pages:  DemoPages(),
		Style:  pager.Style{Spacing: 2},
		Width:  60,
		Height: 12,
	}
	if mutate != nil {
		mutate(&opts)
	}
	model, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return NewHarness(model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func expectSelected(t *testing.T, h *Harness, want int) {
	t.Helper()
	if got := h.Model().SelectedIndex(); got != want {
		t.Fatalf("expected selection %d, got %d", want, got)
	}
}

func expectOffset(t *testing.T, h *Harness, want float64) {
	t.Helper()
	if got := h.Model().strip.Offset(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected strip offset %v, got %v", want, got)
	}
}

func TestNewModelRejectsEmptyPages(t *testing.T) {
	_, err := NewModel(Options{Width: 40, Height: 10})
	if !errors.Is(err, pager.ErrNoSegments) {
		t.Fatalf("expected ErrNoSegments, got %v", err)
	}
}

func TestNewModelLaysOutFixedViewport(t *testing.T) {
	h := newTestHarness(t, nil)
	m := h.Model()
	expectSelected(t, h, 0)
	if m.strip.Viewport() != 60 || m.strip.Pages() != 5 {
		t.Fatalf("expected 60-cell viewport over 5 pages, got %d/%d", m.strip.Viewport(), m.strip.Pages())
	}
	if len(m.buttons) != 5 {
		t.Fatalf("expected 5 buttons, got %d", len(m.buttons))
	}
	if !m.buttons[0].Selected {
		t.Fatalf("expected first button selected")
	}
	left, width := m.indicator.Bounds()
	if left != 0 || width != 7 {
		t.Fatalf("expected indicator under first button, got %d+%d", left, width)
	}
	expectOffset(t, h, 0)
}

func TestClickSelectsButtonAndScrolls(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(click(20, buttonRow))
	expectSelected(t, h, 2)
	expectOffset(t, h, 120)
	left, width := h.Model().indicator.Bounds()
	if left != 19 || width != 7 {
		t.Fatalf("expected indicator at 19+7, got %d+%d", left, width)
	}
	if h.Model().indicator.Animating() {
		t.Fatalf("expected animation to finish")
	}
}

func TestClickBetweenButtonsIsIgnored(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(click(8, buttonRow))
	expectSelected(t, h, 0)
	h.Send(click(20, indicatorRow))
	expectSelected(t, h, 0)
}

func TestArrowKeysNavigate(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	expectSelected(t, h, 0)
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	expectSelected(t, h, 1)
	expectOffset(t, h, 60)
	h.Send(runes("l"))
	expectSelected(t, h, 2)
	h.Send(runes("h"))
	expectSelected(t, h, 1)
}

func TestDigitJumpsToPage(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(runes("5"))
	expectSelected(t, h, 4)
	expectOffset(t, h, 240)
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	expectSelected(t, h, 4)

	h.Send(runes("9"))
	expectSelected(t, h, 4)
	if h.Model().errMsg == "" {
		t.Fatalf("expected an error for a missing page")
	}
}

func TestQuitKey(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(runes("q"))
	if !h.Quit() {
		t.Fatalf("expected q to quit")
	}
}

func TestWindowSizeRelaysPages(t *testing.T) {
	model, err := NewModel(Options{Pages: DemoPages(), Style: pager.Style{Spacing: 2}})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := NewHarness(model)
	if view := h.View(); view != "" {
		t.Fatalf("expected empty view before sizing, got %q", view)
	}
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 20})
	if model.strip.Viewport() != 80 {
		t.Fatalf("expected viewport 80, got %d", model.strip.Viewport())
	}
	h.Send(runes("3"))
	expectOffset(t, h, 160)

	h.Send(tea.WindowSizeMsg{Width: 100, Height: 20})
	expectSelected(t, h, 2)
	expectOffset(t, h, 200)
	if model.strip.Animating() {
		t.Fatalf("expected resize to apply without animation")
	}
}

func TestInsetsGeometryPlacesIndicator(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.Geometry = pager.GeometryInsets })
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	left, width := h.Model().indicator.Target()
	if left != 9 || width != 8 {
		t.Fatalf("expected indicator target 9+8, got %v+%v", left, width)
	}
}

func TestHandlerForPointerMessages(t *testing.T) {
	h := newTestHarness(t, nil)
	if h.Model().handlerFor(&tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected pointer messages to resolve to their handler")
	}
	if h.Model().handlerFor(nil) != nil {
		t.Fatalf("expected no handler for nil")
	}
}

func TestInsetsGeometryKeepsFrameWhenClamped(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Geometry = pager.GeometryInsets
		o.Width = 40
	})
	h.Send(runes("5"))
	left, width := h.Model().indicator.Target()
	if left != 36 || width != 6 {
		t.Fatalf("expected indicator target 36+6 past the edge, got %v+%v", left, width)
	}
}
