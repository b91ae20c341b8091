package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/ui"
)

// File is the TOML configuration file.
//
//	sync = "settle"
//	geometry = "frame"
//
//	[style]
//	font_size = 16
//	selected_color = "blue"
//	spacing = 2
//	insets = { left = 1, right = 1 }
//
//	[[segment]]
//	label = "First"
//	color = "brown"
//	text = "..."
type File struct {
	Sync     string        `toml:"sync"`
	Geometry string        `toml:"geometry"`
	Style    FileStyle     `toml:"style"`
	Segments []FileSegment `toml:"segment"`
}

type FileStyle struct {
	FontSize      float64      `toml:"font_size"`
	ButtonFont    string       `toml:"button_font"`
	NormalColor   string       `toml:"normal_color"`
	SelectedColor string       `toml:"selected_color"`
	Spacing       *float64     `toml:"spacing"`
	Insets        pager.Insets `toml:"insets"`
}

type FileSegment struct {
	Label string `toml:"label"`
	Color string `toml:"color"`
	Text  string `toml:"text"`
}

// LoadFile decodes path. Unknown keys are rejected so typos do not pass
// silently. A file without segments falls back to the demo segments.
func LoadFile(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if len(f.Segments) == 0 {
		f.Segments = defaultFile().Segments
	}
	return f, nil
}

func defaultFile() File {
	demo := ui.DemoPages()
	segments := make([]FileSegment, len(demo))
	for i, spec := range demo {
		segments[i] = FileSegment{Label: spec.Label, Color: spec.Color, Text: spec.Text}
	}
	return File{Segments: segments}
}

// pagerStyle fills the pager style from the file, using terminal defaults
// where the file is silent.
func (s FileStyle) pagerStyle() pager.Style {
	style := pager.DefaultStyle()
	if s.FontSize != 0 {
		style.FontSize = s.FontSize
	}
	style.ButtonFont = s.ButtonFont
	if s.NormalColor != "" {
		style.NormalColor = s.NormalColor
	}
	if s.SelectedColor != "" {
		style.SelectedColor = s.SelectedColor
	}
	style.Spacing = DefaultSpacing
	if s.Spacing != nil {
		style.Spacing = *s.Spacing
	}
	style.Insets = s.Insets
	return style
}
