package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/segmented-pager/internal/format/table"
	"github.com/atomicstack/segmented-pager/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	trackGlyph     = "─"
	indicatorGlyph = "━"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := make([]string, 0, m.height)
	rows = append(rows, m.viewButtons(), m.viewIndicator())
	if m.inspect {
		rows = append(rows, m.viewInspector()...)
	} else {
		rows = append(rows, m.viewPages()...)
	}
	rows = append(rows, m.viewStatus())
	if m.showFooter {
		rows = append(rows, styles.Footer.Render(helpLine(m.keys.ShortHelp())))
	}
	for i, row := range rows {
		rows[i] = fitWidth(row, m.width)
	}
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// viewButtons draws each label centred in its frame.
func (m *Model) viewButtons() string {
	var b strings.Builder
	col := 0
	for _, btn := range m.buttons {
		left := int(btn.Frame.Left)
		if left > col {
			b.WriteString(strings.Repeat(" ", left-col))
			col = left
		}
		style := m.normalButton
		if btn.Selected {
			style = m.selectedButton
		}
		width := int(btn.Frame.Width)
		b.WriteString(style.Width(width).MaxWidth(width).Render(btn.Label))
		col += width
	}
	return b.String()
}

func (m *Model) viewIndicator() string {
	track := styles.IndicatorTrack
	if !m.indicator.Placed() {
		return track.Render(strings.Repeat(trackGlyph, m.width))
	}
	left, width := m.indicator.Bounds()
	if left > m.width {
		left = m.width
	}
	if left+width > m.width {
		width = m.width - left
	}
	right := m.width - left - width
	bar := *styles.Indicator
	if m.indicator.Color != "" {
		bar = bar.Foreground(theme.Color(m.indicator.Color))
	}
	return track.Render(strings.Repeat(trackGlyph, left)) +
		bar.Render(strings.Repeat(indicatorGlyph, width)) +
		track.Render(strings.Repeat(trackGlyph, right))
}

// viewPages renders the pages under the viewport window and cuts the strip
// at the current offset.
func (m *Model) viewPages() []string {
	height := m.pageHeight()
	vw := m.strip.Viewport()
	blank := make([]string, height)
	if vw <= 0 || len(m.pages) == 0 {
		return blank
	}
	offset := m.strip.Cell()
	first := offset / vw
	last := (offset + vw - 1) / vw
	if last >= len(m.pages) {
		last = len(m.pages) - 1
	}
	rendered := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		page, ok := m.pages[i].Page.(Page)
		if !ok {
			rendered = append(rendered, lipgloss.NewStyle().Width(vw).Height(height).Render(""))
			continue
		}
		rendered = append(rendered, page.Render(vw, height))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	lines := strings.Split(strip, "\n")
	start := offset - first*vw
	for i := range lines {
		lines[i] = ansi.Cut(lines[i], start, start+vw)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// viewInspector replaces the pages with a table of segments, their ranges
// and button frames.
func (m *Model) viewInspector() []string {
	height := m.pageHeight()
	selected, _ := m.pager.SelectedIndex()
	cols := []table.Column{
		{Header: " "},
		{Header: "#", Align: table.AlignRight},
		{Header: "label"},
		{Header: "range"},
		{Header: "button"},
	}
	var rows [][]string
	for _, seg := range m.pager.Segments().All() {
		mark := " "
		if seg.Index == selected {
			mark = "▶"
		}
		button := ""
		if frame, ok := m.pager.ButtonFrame(seg.Index); ok {
			button = fmt.Sprintf("%g+%g", frame.Left, frame.Width)
		}
		rows = append(rows, []string{
			mark,
			fmt.Sprintf("%d", seg.Index),
			seg.Label,
			fmt.Sprintf("%.2f-%.2f", seg.Range.Lower, seg.Range.Upper),
			button,
		})
	}
	lines := table.Format(cols, rows)
	if len(lines) > 0 {
		lines[0] = styles.InspectorHeader.Render(lines[0])
	}
	lines = append(lines, fmt.Sprintf("sync %s  geometry %s  offset %.0f/%d",
		m.pager.Sync(), m.pager.Geometry(), m.strip.Offset(), m.strip.MaxOffset()))
	box := styles.Inspector.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	placed := lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
	out := strings.Split(placed, "\n")
	if len(out) > height {
		out = out[:height]
	}
	return out
}

func (m *Model) viewStatus() string {
	if m.mode == ModeJump {
		return m.jump.View()
	}
	if m.errMsg != "" {
		return styles.Error.Render("Error: " + m.errMsg)
	}
	idx, ok := m.pager.SelectedIndex()
	if !ok {
		return ""
	}
	seg, _ := m.pager.Segments().At(idx)
	return styles.Info.Render(fmt.Sprintf("%s  %d/%d", seg.Label, idx+1, m.pager.Segments().Len()))
}

// fitWidth pads or truncates a rendered row to exactly width cells.
func fitWidth(row string, width int) string {
	w := ansi.StringWidth(row)
	switch {
	case w > width:
		return ansi.Truncate(row, width, "")
	case w < width:
		return row + strings.Repeat(" ", width-w)
	}
	return row
}
