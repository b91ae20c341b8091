package ui

import (
	"time"

	"github.com/atomicstack/segmented-pager/internal/logging/events"
	"github.com/atomicstack/segmented-pager/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	frameInterval = 16 * time.Millisecond
	settleDelay   = 150 * time.Millisecond
)

type frameMsg struct{}

// settleMsg fires once dragging has been quiet for settleDelay. Stale
// messages carry an older seq and are dropped.
type settleMsg struct {
	seq int
}

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// dragStep is how far one key press or wheel notch moves the strip.
func (m *Model) dragStep() float64 {
	step := m.strip.Viewport() / 8
	if step < 1 {
		step = 1
	}
	return float64(step)
}

// drag moves the strip by delta cells the way a finger would and restarts
// the settle timer.
func (m *Model) drag(delta float64) tea.Cmd {
	if m.strip.Viewport() == 0 {
		return nil
	}
	offset := m.strip.Drag(delta)
	events.UI.Drag(offset)
	m.pager.OnScrollOffsetChanged(m.strip.Metrics())
	m.settleSeq++
	seq := m.settleSeq
	return m.tick(settleDelay, func(time.Time) tea.Msg {
		return settleMsg{seq: seq}
	})
}

func (m *Model) handleSettleMsg(msg tea.Msg) tea.Cmd {
	settle, ok := msg.(settleMsg)
	if !ok || settle.seq != m.settleSeq {
		return nil
	}
	willDecelerate := m.strip.Snap(pager.AnimationDuration)
	if !willDecelerate {
		events.UI.Settled(m.strip.Offset(), false)
	}
	m.pager.OnDragEnded(willDecelerate, m.strip.Metrics())
	return nil
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	m.ticking = false
	m.indicator.Step(frameInterval)
	decelerating := m.strip.Decelerating()
	moving, settled := m.strip.Step(frameInterval)
	if decelerating && moving {
		m.pager.OnScrollOffsetChanged(m.strip.Metrics())
	}
	if settled {
		events.UI.Settled(m.strip.Offset(), true)
		m.pager.OnScrollOffsetChanged(m.strip.Metrics())
		m.pager.OnDecelerateEnded(m.strip.Metrics())
	}
	return nil
}

// scheduleFrame keeps a single frame tick in flight while anything animates.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !(m.indicator.Animating() || m.strip.Animating()) {
		return nil
	}
	m.ticking = true
	return m.tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
