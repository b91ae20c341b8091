package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Button          *lipgloss.Style
	SelectedButton  *lipgloss.Style
	Indicator       *lipgloss.Style
	IndicatorTrack  *lipgloss.Style
	Inspector       *lipgloss.Style
	InspectorHeader *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Footer          *lipgloss.Style
	Prompt          *lipgloss.Style
}

var defaultStyles = Styles{
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Center),
	),
	SelectedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Align(lipgloss.Center),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	IndicatorTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	Inspector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")),
	),
	InspectorHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// palette maps the colour names accepted in configuration to 256-colour
// codes. Anything else is handed to lipgloss as-is (hex or a numeric code).
var palette = map[string]string{
	"black":     "0",
	"white":     "255",
	"gray":      "245",
	"grey":      "245",
	"lightgray": "250",
	"darkgray":  "238",
	"red":       "196",
	"green":     "34",
	"blue":      "33",
	"cyan":      "44",
	"yellow":    "220",
	"orange":    "208",
	"brown":     "94",
	"purple":    "129",
	"magenta":   "201",
}

// Color resolves a configured colour name.
func Color(name string) lipgloss.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if code, ok := palette[key]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(strings.TrimSpace(name))
}

// Contrast picks black or white text for a background colour name. Unknown
// colours get white.
func Contrast(name string) lipgloss.Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "lightgray", "yellow", "cyan", "orange":
		return lipgloss.Color("0")
	}
	return lipgloss.Color("255")
}

// ApplyFont maps a configured button font onto terminal text attributes.
// Terminals have no font sizes; the system font renders plain.
func ApplyFont(style lipgloss.Style, font string) lipgloss.Style {
	for _, part := range strings.FieldsFunc(strings.ToLower(font), func(r rune) bool { return r == '+' || r == ',' || r == ' ' }) {
		switch part {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "faint":
			style = style.Faint(true)
		}
	}
	return style
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
