package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox renders content in a box with the title embedded in the top border.
// Frame style: ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 1) // left and right border chars
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0) // -2 for spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	// One column of padding on each side inside the frame.
	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		MaxHeight(1).
		Padding(0, 1).
		Background(bg.Color())

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // top and bottom borders

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// renderPanel renders a titled box sized to fit its content.
func (m Model) renderPanel(title, content string, width int, focused bool) string {
	height := strings.Count(content, "\n") + 1 + 2
	return m.renderTitledBox(title, content, width, height, focused)
}

// renderMeter renders a horizontal bar filled in proportion to value/total.
func (m Model) renderMeter(value, total, width int) string {
	width = max(width, 1)
	filled := 0
	if total > 0 {
		filled = min(value*width/total, width)
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Primary)).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border)).Render(strings.Repeat("░", width-filled))
	return fill + rest
}

// renderPills renders a segmented control with the current option highlighted.
func renderPills[T ~string](styles Styles, options []T, current T) string {
	return renderLabeledPills(styles, options, current, func(o T) string { return string(o) })
}

// renderLabeledPills is renderPills with a custom label per option.
func renderLabeledPills[T comparable](styles Styles, options []T, current T, label func(T) string) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o == current {
			parts = append(parts, styles.PillActive.Render(label(o)))
		} else {
			parts = append(parts, styles.Pill.Render(label(o)))
		}
	}
	return strings.Join(parts, " ")
}
