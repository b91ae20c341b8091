package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/theme"
	uistate "github.com/atomicstack/segmented-pager/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Mode int

const (
	ModePager Mode = iota
	ModeJump
)

// rows taken by the button row and the indicator row above the pages, and
// the status row below them.
const (
	buttonRow    = 0
	indicatorRow = 1
	headerRows   = 2
	statusRows   = 1
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the pager screen.
type Options struct {
	Pages      []PageSpec
	Style      pager.Style
	Sync       pager.SyncMode
	Geometry   pager.GeometryModel
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model hosting a pager.
type Model struct {
	pager *pager.Pager
	keys  KeyMap

	buttons        []pager.ButtonState
	normalButton   lipgloss.Style
	selectedButton lipgloss.Style
	indicator      uistate.Indicator
	strip          uistate.Strip
	pages          []pager.PageFrame

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	inspect     bool
	mode        Mode
	jump        textinput.Model
	errMsg      string

	ticking   bool
	settleSeq int
	tick      tickFunc

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the screen and runs pager setup with the configured pages.
func NewModel(opts Options) (*Model, error) {
	m := &Model{
		keys:           DefaultKeyMap(),
		normalButton:   *styles.Button,
		selectedButton: *styles.SelectedButton,
		showFooter:     opts.ShowFooter,
		mode:           ModePager,
		jump:           newJumpInput(),
		tick:           tea.Tick,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.pager = pager.New(m,
		pager.WithMeasurer(measureButton),
		pager.WithSync(opts.Sync),
		pager.WithGeometry(opts.Geometry),
	)
	pairs := make([]pager.Pair, len(opts.Pages))
	for i, spec := range opts.Pages {
		pairs[i] = pager.Pair{Label: spec.Label, Page: NewColorPage(spec)}
	}
	if err := m.pager.Setup(pairs, opts.Style); err != nil {
		return nil, fmt.Errorf("setup pager: %w", err)
	}
	if m.fixedWidth && m.fixedHeight {
		m.applyViewport()
	}
	m.registerHandlers()
	return m, nil
}

func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "jump: "
	ti.Placeholder = "segment label"
	ti.CharLimit = 64
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// measureButton sizes a button to its rendered label plus one cell of
// padding on each side.
func measureButton(label string, _ pager.Font) float64 {
	return float64(lipgloss.Width(label) + 2)
}

// Pager exposes the hosted pager.
func (m *Model) Pager() *pager.Pager {
	return m.pager
}

// SelectedIndex returns the pager's selection.
func (m *Model) SelectedIndex() int {
	idx, _ := m.pager.SelectedIndex()
	return idx
}

// Mode returns the input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.mode == ModeJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(settleMsg{}):         m.handleSettleMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.scheduleFrame(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	changed := false
	if !m.fixedWidth && size.Width != m.width {
		m.width = size.Width
		changed = true
	}
	if !m.fixedHeight && size.Height != m.height {
		m.height = size.Height
		changed = true
	}
	if changed || len(m.pages) == 0 || m.strip.Viewport() == 0 {
		m.applyViewport()
	}
	return nil
}

// applyViewport tells the pager the page area changed size; it answers with
// a page layout and unanimated indicator and scroll placement.
func (m *Model) applyViewport() {
	m.pager.OnSizeChanged(pager.Size{Width: float64(m.width), Height: float64(m.pageHeight())})
}

func (m *Model) pageHeight() int {
	h := m.height - headerRows - statusRows
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}
