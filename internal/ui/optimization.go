package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/catalog"
)

// handleOptimizationKey processes keys while the optimization panel is active.
func (m Model) handleOptimizationKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleMetric):
		m.metric.Next()
	case key.Matches(msg, m.keys.CycleVariant):
		m.variant.Next()
	}
	return m, nil
}

// renderOptimizationSection renders engagement, A/B testing, and playbooks.
func (m Model) renderOptimizationSection(width int) string {
	compact := width < LayoutCompactWidth
	leftWidth := width
	if !compact {
		leftWidth = width * 3 / 5
	}
	rightWidth := width
	if !compact {
		rightWidth = width - leftWidth - 1
	}

	top := []string{m.renderEngagementChart(leftWidth), m.renderVariantCard(rightWidth)}
	var row string
	if compact {
		row = lipgloss.JoinVertical(lipgloss.Left, top...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, top[0], " ", top[1])
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		row,
		m.renderRecommendations(width),
		m.renderHashtags(width),
	)
}

// renderEngagementChart draws one bar per day for the selected metric.
func (m Model) renderEngagementChart(width int) string {
	styles := m.theme.Styles()
	metric := m.metric.Value()
	points := catalog.Engagement()

	peak := 0
	for _, p := range points {
		peak = max(peak, p.Value(metric))
	}
	barWidth := max(width-4-14, 4)

	lines := []string{
		renderLabeledPills(styles, catalog.Metrics, metric, catalog.Metric.Label),
		"",
	}
	for _, p := range points {
		v := p.Value(metric)
		lines = append(lines,
			styles.MutedText.Render(padRight(p.Label, 4))+
				m.renderMeter(v, peak, barWidth)+" "+
				styles.Text.Render(formatCount(v)),
		)
	}
	return m.renderPanel("Engagement • "+metric.Label(), strings.Join(lines, "\n"), width, false)
}

func (m Model) renderVariantCard(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	vk := m.variant.Value()
	v := catalog.Variants()[vk]

	header := renderPills(styles, catalog.VariantKeys, vk)
	if v.IsWinner {
		header += "  " + styles.BadgeStyle("published").Render("Winner")
	}

	lines := []string{
		header,
		"",
		styles.Heading.Render(wrapText(v.Title, inner)),
		styles.MutedText.Render(wrapText("Thumbnail: "+v.Thumbnail, inner)),
		"",
		styles.PrimaryText.Bold(true).Render(v.Conversion),
	}
	return m.renderPanel(fmt.Sprintf("Variant %s", vk), strings.Join(lines, "\n"), width, false)
}

func (m Model) renderRecommendations(width int) string {
	styles := m.theme.Styles()
	inner := max(width-8, 10)

	var lines []string
	for i, r := range catalog.Recommendations() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.PrimaryText.Render(fmt.Sprintf("%02d ", r.ID))+styles.Heading.Render(r.Title))
		for _, l := range strings.Split(wrapText(r.Detail, inner), "\n") {
			lines = append(lines, "   "+styles.MutedText.Render(l))
		}
	}
	return m.renderPanel("Optimization Playbook", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderHashtags(width int) string {
	styles := m.theme.Styles()
	barWidth := max(width-4-20-16, 4)

	var lines []string
	for _, h := range catalog.Hashtags() {
		lines = append(lines,
			styles.Text.Render(padRight(h.Tag, 20))+
				m.renderMeter(h.Score, 100, barWidth)+" "+
				styles.Text.Render(fmt.Sprintf("%3d ", h.Score))+
				styles.BadgeStyle(h.Action).Render(h.Action),
		)
	}
	return m.renderPanel("Hashtag Scores", strings.Join(lines, "\n"), width, false)
}
