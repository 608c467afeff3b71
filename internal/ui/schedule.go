package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/catalog"
)

// handleSchedulingKey processes keys while the scheduling panel is active.
func (m Model) handleSchedulingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CycleFrequency) {
		m.frequency.Next()
	}
	return m, nil
}

// renderSchedulingSection renders the planning cards, the upload queue, and
// the weekly calendar.
func (m Model) renderSchedulingSection(width int) string {
	var cards string
	if width < LayoutCompactWidth {
		cards = lipgloss.JoinVertical(lipgloss.Left,
			m.renderSheetsPanel(width),
			m.renderCadencePanel(width),
			m.renderMetadataPanel(width),
		)
	} else {
		third := width / 3
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSheetsPanel(third),
			m.renderCadencePanel(third),
			m.renderMetadataPanel(width-2*third),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		m.renderUploadQueue(width),
		m.renderCalendar(width),
	)
}

func (m Model) renderSheetsPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	row := func(label, value string) string {
		return styles.FaintText.Render(padRight(label, 16)) + styles.Text.Render(truncate(value, max(inner-16, 4)))
	}
	lines := []string{
		styles.MutedText.Render("Sheet ") + styles.PrimaryText.Render(truncate("Shortform Strategic Planner", inner-6)),
		styles.FaintText.Render(wrapText("Range locked across production sprint 27.", inner)),
		"",
		row("Last Synced", "2 minutes ago"),
		row("Worksheet Tabs", "Editorial • Clips • KPI"),
		row("Write-back Mode", "Bi-directional"),
	}
	return m.renderPanel("Google Sheets Integration", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderCadencePanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	lines := []string{
		renderPills(styles, catalog.Frequencies, m.frequency.Value()),
		"",
		styles.FaintText.Render(wrapText("Platform cadence meets growth targets by balancing freshness and depth.", inner)),
		"",
		styles.MutedText.Render("Publishing Windows"),
		styles.Text.Render(truncate("• Morning spike: 09:30 AM (TikTok)", inner)),
		styles.Text.Render(truncate("• Evening momentum: 07:00 PM (YouTube Shorts)", inner)),
	}
	return m.renderPanel("Upload Frequency", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderMetadataPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	field := func(label, value string) []string {
		return []string{
			styles.FaintText.Render(label),
			styles.Text.Render(wrapText(value, inner)),
		}
	}
	var lines []string
	lines = append(lines, field("Title", "AI Productivity Hacks - Hook Variant A")...)
	lines = append(lines, field("Description", "Unlock creator-grade automation workflows with this 45-second blueprint. Tools, templates, and schedule inside.")...)
	lines = append(lines, field("Tags", "automation, productivity, creator economy")...)
	lines = append(lines, styles.FaintText.Render("Sheet Reference ")+styles.PrimaryText.Render("C27"))
	return m.renderPanel("Metadata Toolkit", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderUploadQueue(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)

	var lines []string
	for _, e := range catalog.Schedule() {
		badge := styles.BadgeStyle(string(e.Platform)).Render(e.Platform.Badge())
		status := styles.BadgeStyle(string(e.Status)).Render(string(e.Status))
		titleWidth := max(inner-lipgloss.Width(badge)-lipgloss.Width(status)-24, 10)
		lines = append(lines,
			badge+" "+
				styles.MutedText.Render(padRight(e.Time, 20))+" "+
				styles.Text.Render(padRight(truncate(e.Title, titleWidth), titleWidth))+" "+
				status,
		)
	}
	return m.renderPanel("Upload Queue", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderCalendar(width int) string {
	styles := m.theme.Styles()
	days := catalog.Calendar()
	colWidth := max((width-4)/len(days), 8)

	cols := make([]string, 0, len(days))
	for _, d := range days {
		cell := []string{
			styles.Heading.Render(d.Day + " " + d.Date),
		}
		if len(d.Slots) == 0 {
			cell = append(cell, styles.FaintText.Render("no posts"))
		}
		for _, s := range d.Slots {
			cell = append(cell, styles.BadgeStyle(string(s.Platform)).Render(s.Platform.Badge())+" "+styles.Text.Render(s.Time))
		}
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(strings.Join(cell, "\n")))
	}

	return m.renderPanel("This Week", lipgloss.JoinHorizontal(lipgloss.Top, cols...), width, false)
}
