package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/nav"
)

// sectionBindings returns the keys that act on section s.
func (m Model) sectionBindings(s nav.Section) []key.Binding {
	switch s {
	case nav.SectionTrend:
		return []key.Binding{m.keys.CycleRegion, m.keys.SortVolume, m.keys.SortTitle}
	case nav.SectionContent:
		return []key.Binding{m.keys.CycleTone, m.keys.CycleLength, m.keys.EditForm, m.keys.Generate, m.keys.ResetForm}
	case nav.SectionClipping:
		return []key.Binding{m.keys.Search, m.keys.StartBack, m.keys.StartFwd, m.keys.EndBack, m.keys.EndFwd, m.keys.Captions, m.keys.Effects}
	case nav.SectionScheduling:
		return []key.Binding{m.keys.CycleFrequency}
	case nav.SectionOptimization:
		return []key.Binding{m.keys.CycleMetric, m.keys.CycleVariant}
	}
	return nil
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{title: "Navigation", bindings: []key.Binding{
			m.keys.Section1, m.keys.Section2, m.keys.Section3, m.keys.Section4, m.keys.Section5,
			m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom, m.keys.HalfPageDown, m.keys.HalfPageUp,
		}},
	}
	for _, e := range nav.Entries() {
		sections = append(sections, helpSection{title: e.Label, bindings: m.sectionBindings(e.Section)})
	}
	sections = append(sections, helpSection{title: "General", bindings: []key.Binding{
		m.keys.CycleTheme, m.keys.Help, m.keys.Quit, m.keys.ForceQuit,
	}})

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	var columns []string
	var col strings.Builder
	rows := 0
	for _, section := range sections {
		// Wrap into a new column when the modal would outgrow the terminal.
		if rows > 0 && rows+len(section.bindings)+2 > m.height-10 {
			columns = append(columns, col.String())
			col.Reset()
			rows = 0
		}
		col.WriteString(styles.PrimaryText.Bold(true).Render(section.title))
		col.WriteString("\n")
		for _, binding := range section.bindings {
			help := binding.Help()
			col.WriteString(keyStyle.Render(help.Key))
			col.WriteString(styles.Text.Render(help.Desc))
			col.WriteString("\n")
		}
		col.WriteString("\n")
		rows += len(section.bindings) + 2
	}
	columns = append(columns, col.String())

	for i := range columns {
		columns[i] = lipgloss.NewStyle().Width(36).Render(strings.TrimRight(columns[i], "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Primary)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
