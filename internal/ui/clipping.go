package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/clips"
)

// initSearch initializes the clip source search input.
func (m *Model) initSearch() {
	ti := textinput.New()
	ti.Placeholder = "Search MrBeast, podcasts, creators..."
	ti.CharLimit = 100
	m.searchInput = ti
}

// handleClippingKey processes keys while the clipping panel is active.
func (m Model) handleClippingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.searchInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.StartBack):
		m.clipRange.NudgeStart(-1)
	case key.Matches(msg, m.keys.StartFwd):
		m.clipRange.NudgeStart(1)
	case key.Matches(msg, m.keys.EndBack):
		m.clipRange.NudgeEnd(-1)
	case key.Matches(msg, m.keys.EndFwd):
		m.clipRange.NudgeEnd(1)
	case key.Matches(msg, m.keys.Captions):
		m.captions = !m.captions
	case key.Matches(msg, m.keys.Effects):
		m.effects = !m.effects
	}
	return m, nil
}

// handleSearchInput handles keyboard input during source search. Results
// update on every keystroke.
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// renderClippingSection renders the source search, trim window, and options.
func (m Model) renderClippingSection(width int) string {
	compact := width < LayoutCompactWidth
	leftWidth := width
	if !compact {
		leftWidth = width / 2
	}
	rightWidth := width
	if !compact {
		rightWidth = width - leftWidth - 1
	}

	sources := m.renderSourcesPanel(leftWidth)
	editor := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTrimPanel(rightWidth),
		m.renderClipOptionsPanel(rightWidth),
	)
	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, sources, editor)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sources, " ", editor)
}

func (m Model) renderSourcesPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)

	input := m.searchInput
	input.Width = max(inner-4, 10)
	lines := []string{input.View(), ""}

	results := clips.Search(m.sources, m.searchInput.Value())
	if len(results) == 0 {
		lines = append(lines, styles.MutedText.Render("No sources match your search."))
	}
	for i, s := range results {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			styles.Heading.Render(truncate(s.Title, inner)),
			styles.MutedText.Render(truncate(fmt.Sprintf("%s • %s • %s", s.Channel, s.Duration, s.Category), inner)),
			styles.FaintText.Render(truncate(strings.Join(s.Tags, " · "), inner)),
		)
	}

	title := fmt.Sprintf("Sources (%d)", len(results))
	return m.renderPanel(title, strings.Join(lines, "\n"), width, m.searching)
}

func (m Model) renderTrimPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	r := m.clipRange

	lines := []string{
		styles.MutedText.Render("Start ") + styles.Text.Render(formatSeconds(r.Start())) +
			styles.MutedText.Render("   End ") + styles.Text.Render(formatSeconds(r.End())) +
			styles.MutedText.Render("   Duration ") + styles.PrimaryText.Bold(true).Render(fmt.Sprintf("%ds", r.Duration())),
		"",
		m.renderTrack(r, inner),
		styles.FaintText.Render(padRight(formatSeconds(clips.DomainMin), inner-4) + formatSeconds(clips.DomainMax)),
	}
	return m.renderPanel("Highlight Window", strings.Join(lines, "\n"), width, false)
}

// renderTrack draws the clip domain with the selected window highlighted.
func (m Model) renderTrack(r clips.Range, width int) string {
	span := clips.DomainMax - clips.DomainMin
	col := func(sec int) int { return (sec - clips.DomainMin) * (width - 1) / span }
	from, to := col(r.Start()), col(r.End())

	idle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Primary))
	handle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Secondary)).Bold(true)

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == from || i == to:
			b.WriteString(handle.Render("┃"))
		case i > from && i < to:
			b.WriteString(active.Render("━"))
		default:
			b.WriteString(idle.Render("─"))
		}
	}
	return b.String()
}

func (m Model) renderClipOptionsPanel(width int) string {
	styles := m.theme.Styles()
	check := func(on bool, label string) string {
		if on {
			return styles.SecondaryText.Render("[x] ") + styles.Text.Render(label)
		}
		return styles.FaintText.Render("[ ] ") + styles.MutedText.Render(label)
	}
	lines := []string{
		check(m.captions, "Auto captions"),
		check(m.effects, "Smart effects"),
	}
	return m.renderPanel("Clip Options", strings.Join(lines, "\n"), width, false)
}
