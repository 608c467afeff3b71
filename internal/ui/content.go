package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reelboard/internal/catalog"
	"github.com/five82/reelboard/internal/script"
	"github.com/five82/reelboard/internal/selection"
)

// initForm builds the script form inputs with their default values.
func (m *Model) initForm() {
	defaults := script.DefaultValues()
	m.tone = selection.New(script.Tones, defaults.Tone)
	m.length = selection.New(script.Lengths, defaults.Length)

	placeholders := [fieldCount]string{
		fieldTrend:        "Selected trend",
		fieldAudience:     "Target audience",
		fieldCallToAction: "Call to action",
	}
	values := [fieldCount]string{
		fieldTrend:        defaults.Trend,
		fieldAudience:     defaults.Audience,
		fieldCallToAction: defaults.CallToAction,
	}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 160
		ti.SetValue(values[i])
		m.fields[i] = ti
	}
	m.focusIdx = fieldTrend
}

// formValues collects the current form state.
func (m Model) formValues() script.Values {
	return script.Values{
		Trend:        m.fields[fieldTrend].Value(),
		Tone:         m.tone.Value(),
		Length:       m.length.Value(),
		Audience:     m.fields[fieldAudience].Value(),
		CallToAction: m.fields[fieldCallToAction].Value(),
	}
}

// resetForm restores the defaults and drops any in-flight draft.
func (m *Model) resetForm() {
	m.gen.Cancel()
	m.generating = false
	m.formErr = ""
	m.editing = false
	m.initForm()
}

// generate starts a draft for the current form values.
func (m Model) generate() (Model, tea.Cmd) {
	values := m.formValues()
	if err := values.Validate(); err != nil {
		m.formErr = "Selected trend is required"
		return m, nil
	}
	m.formErr = ""
	m.generating = true
	return m, generateCmd(m.ctx, m.gen, values)
}

// handleContentKey processes keys while the content panel is active.
func (m Model) handleContentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleTone):
		m.tone.Next()
	case key.Matches(msg, m.keys.CycleLength):
		m.length.Next()
	case key.Matches(msg, m.keys.EditForm):
		m.editing = true
		for i := range m.fields {
			m.fields[i].Blur()
		}
		cmd := m.fields[m.focusIdx].Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Generate):
		return m.generate()
	case key.Matches(msg, m.keys.ResetForm):
		m.resetForm()
	}
	return m, nil
}

// handleFormInput handles keyboard input while a form field is focused.
func (m Model) handleFormInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editing = false
		m.fields[m.focusIdx].Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.editing = false
		m.fields[m.focusIdx].Blur()
		return m.generate()

	case key.Matches(msg, m.keys.Tab):
		m.fields[m.focusIdx].Blur()
		m.focusIdx = (m.focusIdx + 1) % fieldCount
		cmd := m.fields[m.focusIdx].Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.fields[m.focusIdx], cmd = m.fields[m.focusIdx].Update(msg)
	return m, cmd
}

// renderContentSection renders the script form, draft, and storyboard.
func (m Model) renderContentSection(width int) string {
	styles := m.theme.Styles()
	compact := width < LayoutCompactWidth

	formWidth := width
	if !compact {
		formWidth = width * 11 / 20
	}
	inputWidth := max(formWidth-6, 10)

	var form []string
	fieldLabels := [fieldCount]string{"Selected Trend", "Target Audience", "Call to Action"}
	renderField := func(i int) {
		label := styles.MutedText.Render(fieldLabels[i])
		if m.editing && m.focusIdx == i {
			label = styles.PrimaryText.Render("› " + fieldLabels[i])
		}
		input := m.fields[i]
		input.Width = inputWidth
		form = append(form, label, input.View(), "")
	}

	renderField(fieldTrend)
	form = append(form,
		styles.MutedText.Render("Tone"),
		renderPills(styles, m.tone.Options(), m.tone.Value()),
		"",
		styles.MutedText.Render("Desired Length"),
		renderPills(styles, m.length.Options(), m.length.Value()),
		"",
	)
	renderField(fieldAudience)
	renderField(fieldCallToAction)
	if m.formErr != "" {
		form = append(form, styles.DangerText.Render(m.formErr))
	} else {
		form = append(form, styles.FaintText.Render(wrapText(
			"GPT prompt ready. Inputs are streamed to the agency's secure GPT workspace with compliance filters applied automatically.",
			inputWidth)))
	}

	sideWidth := width
	if !compact {
		sideWidth = width - formWidth - 1
	}
	formBox := m.renderPanel("Script Inputs", strings.Join(form, "\n"), formWidth, m.editing)

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDraftPanel(sideWidth),
		m.renderStoryboardPanel(sideWidth),
		m.renderPipelinePanel(sideWidth),
	)

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, formBox, side)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formBox, " ", side)
}

func (m Model) renderDraftPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)

	status := styles.SecondaryText.Render("GPT v5 Studio")
	if m.generating {
		status += "  " + styles.PrimaryText.Render("Generating…")
	}

	var body string
	if m.draft == "" {
		body = styles.MutedText.Render(wrapText(
			"Submit the form to generate a script tailored to your trend and tonality preferences.", inner))
	} else {
		mark := func(s string) string { return styles.PrimaryText.Bold(true).Render(s) }
		body = highlightDraft(m.draft, inner, mark)
	}
	return m.renderPanel("Script Draft", status+"\n\n"+body, width, false)
}

// highlightDraft marks keywords before wrapping so a marked word is never
// split from its styling.
func highlightDraft(draft string, width int, mark func(string) string) string {
	return wrapText(script.Highlight(draft, mark), width)
}

func (m Model) renderStoryboardPanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)

	var lines []string
	for i, scene := range catalog.Storyboard() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			styles.Heading.Render(scene.Title),
			styles.Text.Render(wrapText(scene.Visual, inner)),
			styles.FaintText.Render(wrapText("Audio: "+scene.Audio, inner)),
		)
	}
	return m.renderPanel("Video Blueprint Preview", strings.Join(lines, "\n"), width, false)
}

func (m Model) renderPipelinePanel(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 10)
	const progress = 84

	lines := []string{
		styles.PrimaryText.Bold(true).Render("LovoArt Automation Pipeline") + "  " + styles.BadgeStyle("published").Render("In Sync"),
		styles.FaintText.Render(wrapText("Rendering with voice preset “Nova Spark” • Visual template “Pulse”", inner)),
		"",
		styles.MutedText.Render(fmt.Sprintf("PROCESSING %d%%", progress)),
		m.renderMeter(progress, 100, inner-6),
		"",
		styles.FaintText.Render("Voice Model    ") + styles.Text.Render("Nova Spark (English)"),
		styles.FaintText.Render("Visual Style   ") + styles.Text.Render("Motion Pack • Gradient Pulse"),
		styles.FaintText.Render("Delivery ETA   ") + styles.Text.Render("~2 minutes"),
	}
	return m.renderPanel("Pipeline", strings.Join(lines, "\n"), width, false)
}
