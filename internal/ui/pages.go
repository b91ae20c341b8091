package ui

import (
	"strings"

	"github.com/atomicstack/segmented-pager/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Page is the content behind one segment.
type Page interface {
	Render(width, height int) string
}

// PageSpec describes a coloured demo page.
type PageSpec struct {
	Label string
	Color string
	Text  string
}

// ColorPage fills its area with a background colour and centres its title
// and text.
type ColorPage struct {
	Title string
	Color string
	Text  string
}

// NewColorPage builds a page from spec.
func NewColorPage(spec PageSpec) ColorPage {
	return ColorPage{Title: spec.Label, Color: spec.Color, Text: spec.Text}
}

// Render implements Page.
func (p ColorPage) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := make([]string, 0, 3)
	if p.Title != "" {
		body = append(body, strings.ToUpper(p.Title))
	}
	if text := strings.TrimSpace(p.Text); text != "" {
		body = append(body, "", text)
	}
	block := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(theme.Contrast(p.Color))
	if strings.TrimSpace(p.Color) != "" {
		block = block.Background(theme.Color(p.Color))
	}
	return block.Render(strings.Join(body, "\n"))
}

// DemoPages mirrors the sample screen: five coloured pages, the last two
// sharing a label.
func DemoPages() []PageSpec {
	return []PageSpec{
		{Label: "First", Color: "brown"},
		{Label: "Second", Color: "blue"},
		{Label: "Third", Color: "darkgray"},
		{Label: "Last", Color: "purple"},
		{Label: "Last", Color: "white"},
	}
}
