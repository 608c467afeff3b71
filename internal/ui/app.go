package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/reelboard/internal/catalog"
	"github.com/five82/reelboard/internal/clips"
	"github.com/five82/reelboard/internal/nav"
	"github.com/five82/reelboard/internal/prefs"
	"github.com/five82/reelboard/internal/script"
	"github.com/five82/reelboard/internal/selection"
	"github.com/five82/reelboard/internal/trends"
)

// Script form fields that accept free text.
const (
	fieldTrend = iota
	fieldAudience
	fieldCallToAction
	fieldCount
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Generator  *script.Generator
	Logger     zerolog.Logger
	ThemeName  string
	PrefsPath  string
	ScrollStep int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	gen        *script.Generator
	logger     zerolog.Logger
	prefsPath  string
	scrollStep int
	keys       keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Page state
	page         viewport.Model
	offsets      []int
	scrollTarget int
	scrolling    bool

	// Trend identification
	records   []trends.Record
	region    selection.Choice[trends.Region]
	trendView trends.View

	// Content creation
	tone       selection.Choice[script.Tone]
	length     selection.Choice[script.Length]
	fields     [fieldCount]textinput.Model
	editing    bool
	focusIdx   int
	generating bool
	draft      string
	formErr    string

	// Video clipping
	sources     []clips.Source
	searchInput textinput.Model
	searching   bool
	clipRange   clips.Range
	captions    bool
	effects     bool

	// Scheduling
	frequency selection.Choice[catalog.Frequency]

	// Optimization
	metric  selection.Choice[catalog.Metric]
	variant selection.Choice[catalog.VariantKey]
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	gen := opts.Generator
	if gen == nil {
		gen = script.NewGenerator(script.DefaultDelay, opts.Logger)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	scrollStep := opts.ScrollStep
	if scrollStep <= 0 {
		scrollStep = DefaultScrollStep
	}

	m := Model{
		ctx:        ctx,
		gen:        gen,
		logger:     opts.Logger.With().Str("component", "ui").Logger(),
		prefsPath:  opts.PrefsPath,
		scrollStep: scrollStep,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),

		records:   catalog.Trends(),
		trendView: trends.NewView(),
		region:    selection.New(trends.Regions, trends.NewView().Region),

		sources:   catalog.ClipSources(),
		clipRange: clips.NewRange(),
		captions:  true,
		effects:   true,

		frequency: selection.New(catalog.Frequencies, catalog.FrequencyDaily),
		metric:    selection.New(catalog.Metrics, catalog.MetricViews),
		variant:   selection.New(catalog.VariantKeys, catalog.VariantA),
	}
	m.initForm()
	m.initSearch()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePage()
		m.ready = true

	case scrollFrameMsg:
		m, cmd = m.handleScrollFrame()

	case scriptMsg:
		m.handleScript(msg)

	default:
		// Cursor blinks for whichever input has focus.
		switch {
		case m.editing:
			m.fields[m.focusIdx], cmd = m.fields[m.focusIdx].Update(msg)
		case m.searching:
			m.searchInput, cmd = m.searchInput.Update(msg)
		}
		return m, cmd
	}

	m.refreshPage()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.page.View())

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// ActiveSection reports the section currently under the viewport top.
func (m Model) ActiveSection() nav.Section {
	return nav.ActiveAt(m.offsets, m.page.YOffset, ActiveRowThreshold)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// ctrl+c arrives as a key in raw mode and must work while typing.
	if key.Matches(msg, m.keys.ForceQuit) {
		m.gen.Cancel()
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.editing {
		return m.handleFormInput(msg)
	}
	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.gen.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Section1):
		return m.jumpTo(nav.SectionTrend)
	case key.Matches(msg, m.keys.Section2):
		return m.jumpTo(nav.SectionContent)
	case key.Matches(msg, m.keys.Section3):
		return m.jumpTo(nav.SectionClipping)
	case key.Matches(msg, m.keys.Section4):
		return m.jumpTo(nav.SectionScheduling)
	case key.Matches(msg, m.keys.Section5):
		return m.jumpTo(nav.SectionOptimization)

	case key.Matches(msg, m.keys.Down):
		m.scrolling = false
		m.page.ScrollDown(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.scrolling = false
		m.page.ScrollUp(1)
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.scrolling = false
		m.page.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.scrolling = false
		m.page.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.scrolling = false
		m.page.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.scrolling = false
		m.page.GotoBottom()
		return m, nil
	}

	// Section-specific keys act on whichever panel is active.
	switch m.ActiveSection() {
	case nav.SectionTrend:
		return m.handleTrendKey(msg)
	case nav.SectionContent:
		return m.handleContentKey(msg)
	case nav.SectionClipping:
		return m.handleClippingKey(msg)
	case nav.SectionScheduling:
		return m.handleSchedulingKey(msg)
	case nav.SectionOptimization:
		return m.handleOptimizationKey(msg)
	}
	return m, nil
}

// cycleTheme advances to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.logger.Info().Str("theme", m.theme.Name).Msg("theme changed")
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs")
	}
}

// handleScript applies a finished generation. Results from superseded or
// cancelled requests are dropped.
func (m *Model) handleScript(msg scriptMsg) {
	switch {
	case errors.Is(msg.err, script.ErrSuperseded):
		return
	case errors.Is(msg.err, context.Canceled), errors.Is(msg.err, context.DeadlineExceeded):
		m.generating = false
		return
	case msg.err != nil:
		m.generating = false
		m.formErr = msg.err.Error()
		return
	}
	if msg.result.Seq != m.gen.Latest() {
		return
	}
	m.draft = msg.result.Script
	m.generating = false
}

// Messages

type scrollFrameMsg time.Time

type scriptMsg struct {
	result script.Result
	err    error
}

// Commands

func scrollFrameCmd() tea.Cmd {
	return tea.Tick(ScrollFrameInterval, func(t time.Time) tea.Msg {
		return scrollFrameMsg(t)
	})
}

func generateCmd(ctx context.Context, gen *script.Generator, v script.Values) tea.Cmd {
	return func() tea.Msg {
		res, err := gen.Generate(ctx, v)
		return scriptMsg{result: res, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
