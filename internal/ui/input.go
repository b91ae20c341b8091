package ui

import (
	"github.com/atomicstack/segmented-pager/internal/logging/events"
	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	if m.mode == ModeJump {
		return m.handleJumpKey(keyMsg)
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Prev):
		m.step(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.step(1)
	case key.Matches(keyMsg, m.keys.DragLeft):
		return m.drag(-m.dragStep())
	case key.Matches(keyMsg, m.keys.DragRight):
		return m.drag(m.dragStep())
	case key.Matches(keyMsg, m.keys.Jump):
		return m.openJump()
	case key.Matches(keyMsg, m.keys.Inspect):
		m.inspect = !m.inspect
	case key.Matches(keyMsg, m.keys.Cancel):
		m.inspect = false
	default:
		if idx, ok := digitIndex(keyMsg); ok {
			if !m.pager.Navigate(idx) {
				m.errMsg = "no such page"
			}
		}
	}
	return nil
}

// step navigates to the neighbouring segment, stopping at either end.
func (m *Model) step(delta int) {
	idx, ok := m.pager.SelectedIndex()
	if !ok {
		return
	}
	m.pager.Navigate(idx + delta)
}

func digitIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.mode == ModeJump {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.drag(-m.dragStep())
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.drag(m.dragStep())
	case tea.MouseButtonLeft:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
		btn, hit := m.buttonAt(mouse.X, mouse.Y)
		events.UI.Click(mouse.X, mouse.Y, hit)
		if hit {
			m.pager.SelectByButton(btn.ID)
		}
	}
	return nil
}

// buttonAt hit-tests the button row.
func (m *Model) buttonAt(x, y int) (pager.ButtonState, bool) {
	if y != buttonRow {
		return pager.ButtonState{}, false
	}
	fx := float64(x)
	for _, btn := range m.buttons {
		if fx >= btn.Frame.Left && fx < btn.Frame.Right() {
			return btn, true
		}
	}
	return pager.ButtonState{}, false
}
