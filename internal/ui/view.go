package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	placeholderText = "Select an option"
	doneLabel       = "Done"
	fieldMinWidth   = 24
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := make([]string, 0, 4)
	if m.label != "" {
		sections = append(sections, styles.Label.Render(m.label))
	}

	field := m.zones.Mark(fieldID, m.renderField())
	popup := ""
	if m.sel.Menu().Phase().Visible() {
		popup = m.renderMenu()
	}
	sections = append(sections, popover.Place(field, popup, m.sel.Menu().Options().Popover, m.width))

	done := styles.Button
	if m.focus.Active() == doneID {
		done = styles.ButtonFocused
	}
	sections = append(sections, m.zones.Mark(doneID, done.Render(doneLabel)))

	lines := make([]styledLine, 0, 4)
	switch {
	case m.errMsg != "":
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	case m.infoMsg != "":
		lines = append(lines, styledLine{text: m.infoMsg, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	if len(lines) > 0 {
		sections = append(sections, renderLines(applyWidth(lines, m.width)))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	out = limitRows(out, m.height, m.width)
	return m.zones.Scan(out)
}

// renderField draws the trigger: the display text or a placeholder and an
// arrow showing whether the menu is expanded.
func (m *Model) renderField() string {
	width := m.fieldWidth()
	text := m.sel.DisplayText()
	textStyle := styles.Field
	switch {
	case m.sel.Disabled():
		textStyle = styles.FieldDisabled
	case m.focus.Active() == fieldID:
		textStyle = styles.FieldFocused
	}
	arrow := "▾"
	if m.sel.Expanded() {
		arrow = "▴"
	}
	inner := max(width-4, 4)
	body := text
	if body == "" {
		body = styles.FieldPlaceholder.Render(truncate.StringWithTail(placeholderText, uint(inner-2), "…"))
	} else {
		body = truncate.StringWithTail(body, uint(inner-2), "…")
	}
	if pad := inner - 2 - lipgloss.Width(body); pad > 0 {
		body += strings.Repeat(" ", pad)
	}
	return textStyle.Render(body + " " + arrow)
}

func (m *Model) fieldWidth() int {
	width := fieldMinWidth
	for _, item := range m.sel.Menu().Rows() {
		width = max(width, lipgloss.Width(item.Label())+6)
	}
	if m.width > 0 {
		width = min(width, m.width)
	}
	return width
}

// renderMenu draws the rows inside the viewport window. Disabled rows keep
// their place so row positions match the option order.
func (m *Model) renderMenu() string {
	mn := m.sel.Menu()
	rows := mn.Rows()
	if len(rows) == 0 {
		msg := "(no options)"
		if filter := m.store.Filter(); filter != "" {
			msg = fmt.Sprintf("No matches for %q", filter)
		}
		return styles.Menu.Render(styles.Info.Render(msg))
	}
	width := m.fieldWidth() - 2
	start, end := mn.Viewport().Visible()
	lines := make([]string, 0, end-start)
	for _, item := range rows[start:end] {
		line := m.buildItemLine(item, width)
		lines = append(lines, m.zones.Mark(itemZoneID(item), renderLines([]styledLine{line})))
	}
	if start > 0 || end < len(rows) {
		lines = append(lines, styles.Info.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(rows))))
	}
	return styles.Menu.Render(strings.Join(lines, "\n"))
}

// buildItemLine constructs a single styledLine for a menu row.
func (m *Model) buildItemLine(item menu.Item, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if item.Selected() {
		mark = styles.SelectedMark.Render("✓") + " "
	}
	switch {
	case item.Disabled():
		lineStyle = styles.DisabledItem
	case item.Focused() && m.sel.Menu().FocusVisible():
		indicatorStyle = styles.FocusedIndicator
		lineStyle = styles.FocusedItem
	case item.Focused():
		lineStyle = styles.HoveredItem
	}
	label := item.Label()
	if width > 0 {
		label = truncateText(label, max(width-4, 1))
		if pad := width - 4 - len([]rune(label)); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          indicator + " " + mark + lineStyle.Render(label),
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) footerText() string {
	parts := make([]string, 0, 6)
	parts = append(parts, "↑/↓ move", "type to search")
	for _, b := range m.keys.help() {
		parts = append(parts, helpEntry(b))
	}
	return strings.Join(parts, "  ")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// limitRows clips rendered output to height rows, replacing the last kept
// row with an ellipsis.
func limitRows(out string, height, width int) string {
	if height <= 0 {
		return out
	}
	rows := strings.Split(out, "\n")
	if len(rows) <= height {
		return out
	}
	rows = rows[:height]
	rows[height-1] = truncateText("…", width)
	return strings.Join(rows, "\n")
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
