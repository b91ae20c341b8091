package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/segmented-pager/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openJump() tea.Cmd {
	m.mode = ModeJump
	m.inspect = false
	m.jump.Reset()
	return m.jump.Focus()
}

func (m *Model) closeJump() {
	m.mode = ModePager
	m.jump.Blur()
	m.jump.Reset()
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.closeJump()
		return nil
	case key.Matches(msg, m.keys.Accept):
		m.submitJump()
		return nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return cmd
}

// submitJump resolves the typed label to a segment and navigates there.
func (m *Model) submitJump() {
	query := strings.TrimSpace(m.jump.Value())
	m.closeJump()
	if query == "" {
		return
	}
	idx, ok := m.pager.Segments().FindLabel(query)
	if !ok {
		events.UI.Jump(query, -1)
		m.errMsg = fmt.Sprintf("no segment matches %q", query)
		return
	}
	events.UI.Jump(query, idx)
	m.errMsg = ""
	m.pager.Navigate(idx)
}
