package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/catalog"
	"github.com/five82/reelboard/internal/trends"
)

// handleTrendKey processes keys while the trend panel is active.
func (m Model) handleTrendKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleRegion):
		m.trendView.SetRegion(m.region.Next())
	case key.Matches(msg, m.keys.SortVolume):
		m.trendView.PressSort(trends.SortVolume)
	case key.Matches(msg, m.keys.SortTitle):
		m.trendView.PressSort(trends.SortTitle)
	}
	return m, nil
}

// renderTrendSection renders the stat cards and the filtered trend table.
func (m Model) renderTrendSection(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatCards(width),
		m.renderTrendTable(width),
	)
}

func (m Model) renderStatCards(width int) string {
	styles := m.theme.Styles()
	stats := catalog.TrendStats()

	cardWidth := width / len(stats)
	if width < LayoutCompactWidth {
		cardWidth = width / 2
	}

	cards := make([]string, 0, len(stats))
	for _, s := range stats {
		body := styles.Heading.Render(s.Value) + "\n" + styles.SecondaryText.Render(truncate(s.Caption, cardWidth-4))
		cards = append(cards, m.renderPanel(s.Label, body, cardWidth, false))
	}

	if width < LayoutCompactWidth {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2:]...),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderTrendTable(width int) string {
	styles := m.theme.Styles()
	view := m.trendView
	rows := view.Apply(m.records)

	inner := width - 4
	titleWidth := max(inner-46, 16)

	regions := renderLabeledPills(styles, trends.Regions, view.Region, trends.Region.Label)
	sortLabel := fmt.Sprintf("Sort: %s (%s)", view.Key, view.DirectionLabel())

	lines := []string{
		regions + "  " + styles.MutedText.Render(sortLabel),
		"",
		styles.FaintText.Render(
			padRight("TOPIC", titleWidth) + "  " +
				padRight("VOLUME", 18) + "  " +
				padRight("SOURCE", 14) + "  " +
				"CHANGE"),
	}

	if len(rows) == 0 {
		lines = append(lines, styles.MutedText.Render("No trends for this region."))
	}
	for _, r := range rows {
		volume := m.renderMeter(r.SearchVolume, 100, 12) + " " + styles.Text.Render(fmt.Sprintf("%3d", r.SearchVolume))
		lines = append(lines,
			styles.Text.Render(padRight(truncate(r.Title, titleWidth), titleWidth))+"  "+
				volume+"    "+
				styles.MutedText.Render(padRight(string(r.Source), 14))+"  "+
				styles.SecondaryText.Render(fmt.Sprintf("+%d%%", r.ChangePct)),
		)
	}

	title := "Trending Topics • " + view.Region.Label()
	return m.renderPanel(title, strings.Join(lines, "\n"), width, false)
}
