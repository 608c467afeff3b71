package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/nav"
)

// pageWidth is the width available to the scrolling page.
func (m Model) pageWidth() int {
	return max(m.width-SidebarWidth, 20)
}

// pageHeight is the height of the scrolling page.
func (m Model) pageHeight() int {
	return max(m.height-chromeHeight, 1)
}

// resizePage sizes the page viewport to the window, keeping the scroll offset.
func (m *Model) resizePage() {
	if !m.ready {
		m.page = viewport.New(m.pageWidth(), m.pageHeight())
		m.page.Style = lipgloss.NewStyle()
		return
	}
	m.page.Width = m.pageWidth()
	m.page.Height = m.pageHeight()
}

// refreshPage re-renders every section into the viewport and records where
// each one starts.
func (m *Model) refreshPage() {
	if m.page.Width == 0 {
		return
	}
	content, offsets := m.renderPage(m.page.Width - 1)
	y := m.page.YOffset
	m.page.SetContent(content)
	m.page.SetYOffset(y)
	m.offsets = offsets
}

// renderPage stacks the sections vertically. Trailing padding lets the last
// section scroll to the top of the viewport.
func (m Model) renderPage(width int) (string, []int) {
	entries := nav.Entries()
	offsets := make([]int, 0, len(entries))
	var lines []string

	for _, e := range entries {
		offsets = append(offsets, len(lines))
		section := m.renderSectionHeading(e, width) + "\n\n" + m.renderSection(e.Section, width)
		lines = append(lines, strings.Split(section, "\n")...)
		lines = append(lines, "", "")
	}

	for i := 0; i < m.pageHeight(); i++ {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), offsets
}

func (m Model) renderSection(s nav.Section, width int) string {
	switch s {
	case nav.SectionTrend:
		return m.renderTrendSection(width)
	case nav.SectionContent:
		return m.renderContentSection(width)
	case nav.SectionClipping:
		return m.renderClippingSection(width)
	case nav.SectionScheduling:
		return m.renderSchedulingSection(width)
	case nav.SectionOptimization:
		return m.renderOptimizationSection(width)
	}
	return ""
}

func (m Model) renderSectionHeading(e nav.Entry, width int) string {
	styles := m.theme.Styles()
	title := styles.Heading.Render(e.Label)
	if m.ActiveSection() == e.Section {
		title = styles.PrimaryText.Bold(true).Render("▍" + e.Label)
	}
	rule := styles.FaintText.Render(strings.Repeat("─", max(width, 1)))
	return title + "\n" + styles.MutedText.Render(sectionBlurbs[e.Section]) + "\n" + rule
}

var sectionBlurbs = map[nav.Section]string{
	nav.SectionTrend:        "Monitor rising topics across TikTok, YouTube, and Google Trends.",
	nav.SectionContent:      "Generate high-impact scripts, preview auto-produced visuals, and tune delivery parameters.",
	nav.SectionClipping:     "Pick a source, trim the highlight window, and apply captions and effects.",
	nav.SectionScheduling:   "Line up uploads across TikTok and YouTube Shorts.",
	nav.SectionOptimization: "Track engagement, compare A/B variants, and act on recommendations.",
}

// jumpTo starts a smooth scroll to the top of section s.
func (m Model) jumpTo(s nav.Section) (Model, tea.Cmd) {
	idx := nav.IndexOf(s)
	if idx < 0 || idx >= len(m.offsets) {
		return m, nil
	}
	maxOffset := max(m.page.TotalLineCount()-m.page.Height, 0)
	m.scrollTarget = min(m.offsets[idx], maxOffset)
	if m.scrollTarget == m.page.YOffset {
		m.scrolling = false
		return m, nil
	}
	m.scrolling = true
	return m, scrollFrameCmd()
}

// handleScrollFrame moves the page one step toward the scroll target.
func (m Model) handleScrollFrame() (Model, tea.Cmd) {
	if !m.scrolling {
		return m, nil
	}
	before := m.page.YOffset
	delta := m.scrollTarget - before
	switch {
	case delta > 0:
		m.page.SetYOffset(before + min(delta, m.scrollStep))
	case delta < 0:
		m.page.SetYOffset(before - min(-delta, m.scrollStep))
	}
	if m.page.YOffset == m.scrollTarget || m.page.YOffset == before {
		m.scrolling = false
		return m, nil
	}
	return m, scrollFrameCmd()
}
