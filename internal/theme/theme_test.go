package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorResolvesNames(t *testing.T) {
	cases := map[string]lipgloss.Color{
		"blue":    "33",
		" Gray ":  "245",
		"#ff0000": "#ff0000",
		"202":     "202",
	}
	for in, want := range cases {
		if got := Color(in); got != want {
			t.Fatalf("Color(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyFontSetsAttributes(t *testing.T) {
	style := ApplyFont(lipgloss.NewStyle(), "bold+italic")
	if !style.GetBold() {
		t.Fatalf("expected bold")
	}
	if !style.GetItalic() {
		t.Fatalf("expected italic")
	}
	if ApplyFont(lipgloss.NewStyle(), "system").GetBold() {
		t.Fatalf("system font should render plain")
	}
}

func TestContrast(t *testing.T) {
	if Contrast("white") != lipgloss.Color("0") {
		t.Fatalf("expected dark text on white")
	}
	if Contrast("purple") != lipgloss.Color("255") {
		t.Fatalf("expected light text on purple")
	}
}
