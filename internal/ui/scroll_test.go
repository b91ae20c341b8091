package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/segmented-pager/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
)

func dragRight(h *Harness, times int) {
	for i := 0; i < times; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyShiftRight})
	}
}

func TestShortDragSnapsBack(t *testing.T) {
	h := newTestHarness(t, nil)
	dragRight(h, 1)
	expectOffset(t, h, 7)
	h.Settle()
	expectOffset(t, h, 0)
	expectSelected(t, h, 0)
}

func TestDragSettlesOnNearestPage(t *testing.T) {
	h := newTestHarness(t, nil)
	dragRight(h, 5)
	expectOffset(t, h, 35)
	expectSelected(t, h, 0)

	h.Settle()
	expectOffset(t, h, 60)
	expectSelected(t, h, 1)
	left, width := h.Model().indicator.Bounds()
	if left != 9 || width != 8 {
		t.Fatalf("expected indicator under second button, got %d+%d", left, width)
	}
}

func TestDragToPageBoundarySettlesWithoutDeceleration(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(runes("2"))
	expectOffset(t, h, 60)
	dragRight(h, 1)
	h.Send(tea.KeyMsg{Type: tea.KeyShiftLeft})
	expectOffset(t, h, 60)
	h.Settle()
	expectSelected(t, h, 1)
	if h.Model().strip.Decelerating() {
		t.Fatalf("expected no deceleration when resting on a page")
	}
}

func TestStaleSettleTimersAreDropped(t *testing.T) {
	h := newTestHarness(t, nil)
	dragRight(h, 3)
	if got := len(h.pending); got != 3 {
		t.Fatalf("expected 3 parked timers, got %d", got)
	}
	m := h.Model()
	h.Send(settleMsg{seq: m.settleSeq - 1})
	expectOffset(t, h, 21)
}

func TestContinuousModeFollowsDrag(t *testing.T) {
	h := newTestHarness(t, func(o *Options) { o.Sync = pager.SyncContinuous })
	dragRight(h, 6)
	expectSelected(t, h, 0)
	dragRight(h, 1)
	expectOffset(t, h, 49)
	expectSelected(t, h, 1)

	h.Settle()
	expectOffset(t, h, 60)
	expectSelected(t, h, 1)
}

func TestMouseWheelDrags(t *testing.T) {
	h := newTestHarness(t, nil)
	for i := 0; i < 5; i++ {
		h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	expectOffset(t, h, 35)
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	expectOffset(t, h, 28)
	h.Settle()
	expectSelected(t, h, 0)
}

func TestDragClampsAtEnds(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(tea.KeyMsg{Type: tea.KeyShiftLeft})
	expectOffset(t, h, 0)
	h.Send(runes("5"))
	dragRight(h, 2)
	expectOffset(t, h, 240)
	h.Settle()
	expectSelected(t, h, 4)
}

// newManualModel returns the demo screen with timers that never fire, so a
// test delivers frames and settle messages itself.
func newManualModel(t *testing.T) *Model {
	t.Helper()
	model, err := NewModel(Options{
		Pages:  DemoPages(),
		Style:  pager.Style{Spacing: 2},
		Width:  60,
		Height: 12,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	model.tick = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }
	return model
}

func runFrames(m *Model, n int) {
	for i := 0; i < n; i++ {
		m.Update(frameMsg{})
	}
}

func TestClickCancelsPendingDragSettle(t *testing.T) {
	m := newManualModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	dragSeq := m.settleSeq

	m.Update(click(30, buttonRow))
	runFrames(m, 9)
	m.Update(settleMsg{seq: dragSeq})
	runFrames(m, 40)

	if got := m.SelectedIndex(); got != 3 {
		t.Fatalf("expected the clicked segment 3 to stay selected, got %d", got)
	}
	if got := m.strip.Offset(); got != 180 {
		t.Fatalf("expected strip to rest on page 3 at 180, got %v", got)
	}
	if m.strip.Decelerating() {
		t.Fatalf("expected no snap after the click")
	}
}

func TestKeyNavigationCancelsPendingDragSettle(t *testing.T) {
	m := newManualModel(t)
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	dragSeq := m.settleSeq

	m.Update(runes("4"))
	runFrames(m, 3)
	m.Update(settleMsg{seq: dragSeq})
	runFrames(m, 40)

	if got := m.SelectedIndex(); got != 3 {
		t.Fatalf("expected segment 3 after the digit key, got %d", got)
	}
	if got := m.strip.Offset(); got != 180 {
		t.Fatalf("expected strip at 180, got %v", got)
	}
}

func TestSettleStillAppliesWithoutNavigation(t *testing.T) {
	m := newManualModel(t)
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	m.Update(settleMsg{seq: m.settleSeq})
	runFrames(m, 40)
	if got := m.SelectedIndex(); got != 1 {
		t.Fatalf("expected the drag to settle on segment 1, got %d", got)
	}
}
