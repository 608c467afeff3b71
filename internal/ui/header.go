package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/nav"
)

// searchPlaceholder is shown in the header search box. The box is display only.
const searchPlaceholder = "Search trends, scripts, clips..."

// renderHeader renders the top bar: logo, search box, and workspace label.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	logo := bg.Render("▶ reelboard", styles.Logo)
	workspace := bg.Render("Producer HQ", styles.Text.Bold(true))

	boxWidth := min(40, max(m.width-lipgloss.Width(logo)-lipgloss.Width(workspace)-8, 10))
	search := bg.Render("⌕ ", styles.FaintText) +
		bg.Render(truncate(searchPlaceholder, boxWidth), styles.FaintText) +
		bg.Spaces(max(boxWidth-len(searchPlaceholder), 0))

	left := logo + bg.Spaces(4) + search
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(workspace)-1, 1)
	return bg.FillLine(left+bg.Spaces(gap)+workspace, m.width)
}

// renderSidebar renders the section list with the active section marked.
func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	active := m.ActiveSection()
	width := SidebarWidth - 1

	var lines []string
	lines = append(lines, NewBgStyle(m.theme.Surface).FillLine(styles.MutedText.Render(" WORKFLOW"), width), "")

	for i, e := range nav.Entries() {
		bgColor := m.theme.Surface
		marker := "  "
		labelStyle := styles.Text
		if e.Section == active {
			bgColor = m.theme.FocusBg
			marker = "▌ "
			labelStyle = styles.PrimaryText.Bold(true)
		}
		bg := NewBgStyle(bgColor)
		label := bg.Render(marker, styles.PrimaryText) +
			bg.Render(fmt.Sprintf("%d ", i+1), styles.FaintText) +
			bg.Render(truncate(e.Label, width-5), labelStyle)
		desc := bg.Spaces(4) + bg.Render(truncate(e.Description, width-5), styles.MutedText)
		lines = append(lines, bg.FillLine(label, width), bg.FillLine(desc, width), NewBgStyle(m.theme.Surface).FillLine("", width))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(width).
		Height(m.pageHeight()).
		MaxHeight(m.pageHeight()).
		MarginRight(1).
		Render(strings.Join(lines, "\n"))
}

// renderFooter renders the key hint line for the active section.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	hints := m.keys.ShortHelp()
	switch {
	case m.editing:
		hints = append(hints[:0:0], m.keys.Tab, m.keys.Confirm, m.keys.Escape)
	case m.searching:
		hints = append(hints[:0:0], m.keys.Confirm, m.keys.Escape)
	default:
		hints = append(hints, m.sectionBindings(m.ActiveSection())...)
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		help := h.Help()
		parts = append(parts, bg.Render(help.Key, styles.WarningText)+bg.Space()+bg.Render(help.Desc, styles.MutedText))
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, "  "), m.width)
}
