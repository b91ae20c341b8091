package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds how many messages one Send may process.
const maxSteps = 10000

// Harness drives the UI model programmatically for integration tests. Timers
// fire without waiting: animation frames run to completion inside Send, and
// settle timers are parked until Settle is called.
type Harness struct {
	model   *Model
	pending []tea.Msg
	quit    bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.tick = func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
			return func() tea.Msg { return fn(time.Time{}) }
		}
	}
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.quit {
		return
	}
	h.run(msg)
}

// Settle delivers parked settle timers as if the quiet period had elapsed.
func (h *Harness) Settle() {
	pending := h.pending
	h.pending = nil
	for _, msg := range pending {
		if h.quit {
			return
		}
		h.run(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

func (h *Harness) run(first tea.Msg) {
	queue := []tea.Msg{first}
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		msg := queue[0]
		queue = queue[1:]
		switch msg := msg.(type) {
		case tea.QuitMsg:
			h.quit = true
			return
		case settleMsg:
			if steps > 0 {
				h.pending = append(h.pending, msg)
				continue
			}
		case tea.BatchMsg:
			for _, cmd := range msg {
				if cmd == nil {
					continue
				}
				if next := cmd(); next != nil {
					queue = append(queue, next)
				}
			}
			continue
		}
		mdl, cmd := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd != nil {
			if next := cmd(); next != nil {
				queue = append(queue, next)
			}
		}
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
