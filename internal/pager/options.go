package pager

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// AnimationDuration is the transition hint attached to animated indicator
// moves.
const AnimationDuration = 300 * time.Millisecond

const (
	DefaultFontSize      = 16
	DefaultNormalColor   = "gray"
	DefaultSelectedColor = "blue"
	DefaultSpacing       = 10
)

// Insets pad the button row inside the control.
type Insets struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// Style carries the recognised styling options. ButtonFont, when set,
// overrides FontSize.
type Style struct {
	FontSize      float64
	ButtonFont    string
	NormalColor   string
	SelectedColor string
	Spacing       float64
	Insets        Insets
}

// DefaultStyle returns the documented defaults: 16pt system font, gray
// buttons, blue selection and 10 units between buttons.
func DefaultStyle() Style {
	return Style{
		FontSize:      DefaultFontSize,
		NormalColor:   DefaultNormalColor,
		SelectedColor: DefaultSelectedColor,
		Spacing:       DefaultSpacing,
	}
}

// normalized fills unset fields. Spacing and insets are taken as given.
func (s Style) normalized() Style {
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if strings.TrimSpace(s.NormalColor) == "" {
		s.NormalColor = DefaultNormalColor
	}
	if strings.TrimSpace(s.SelectedColor) == "" {
		s.SelectedColor = DefaultSelectedColor
	}
	if s.Spacing < 0 {
		s.Spacing = 0
	}
	return s
}

// Font is the resolved button font.
type Font struct {
	Name string
	Size float64
}

const systemFont = "system"

// Font resolves the button font from the style.
func (s Style) Font() Font {
	if name := strings.TrimSpace(s.ButtonFont); name != "" {
		return Font{Name: name}
	}
	size := s.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return Font{Name: systemFont, Size: size}
}

// SyncMode selects which scroll callbacks drive selection.
type SyncMode int

const (
	// SyncSettle reacts to drag-end and deceleration-end events.
	SyncSettle SyncMode = iota
	// SyncContinuous reacts to every scroll offset change.
	SyncContinuous
)

func (m SyncMode) String() string {
	switch m {
	case SyncContinuous:
		return "continuous"
	default:
		return "settle"
	}
}

// ParseSyncMode accepts "settle" or "continuous".
func ParseSyncMode(s string) (SyncMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "settle":
		return SyncSettle, nil
	case "continuous":
		return SyncContinuous, nil
	}
	return SyncSettle, fmt.Errorf("unknown sync mode %q (want settle or continuous)", s)
}

// GeometryModel selects how indicator placement is expressed.
type GeometryModel int

const (
	// GeometryFrame places the indicator by left edge and width.
	GeometryFrame GeometryModel = iota
	// GeometryInsets places the indicator by left and right insets within
	// the control.
	GeometryInsets
)

func (g GeometryModel) String() string {
	switch g {
	case GeometryInsets:
		return "insets"
	default:
		return "frame"
	}
}

// ParseGeometryModel accepts "frame" or "insets".
func ParseGeometryModel(s string) (GeometryModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frame":
		return GeometryFrame, nil
	case "insets":
		return GeometryInsets, nil
	}
	return GeometryFrame, fmt.Errorf("unknown geometry model %q (want frame or insets)", s)
}

// Measurer reports the width a button needs for label in font.
type Measurer func(label string, font Font) float64

// CellMeasurer measures labels in terminal cells plus one cell of padding on
// each side.
func CellMeasurer(label string, _ Font) float64 {
	return float64(ansi.StringWidth(label) + 2)
}

// Option configures a Pager.
type Option func(*Pager)

// WithMeasurer overrides CellMeasurer.
func WithMeasurer(m Measurer) Option {
	return func(p *Pager) {
		if m != nil {
			p.measure = m
		}
	}
}

// WithSync selects the scroll sync source.
func WithSync(mode SyncMode) Option {
	return func(p *Pager) { p.sync = mode }
}

// WithGeometry selects the indicator geometry model.
func WithGeometry(model GeometryModel) Option {
	return func(p *Pager) { p.geometry = model }
}

// WithViewport seeds the viewport size before the first size-changed event.
func WithViewport(size Size) Option {
	return func(p *Pager) { p.viewport = size }
}
