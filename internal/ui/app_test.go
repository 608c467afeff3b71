package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/reelboard/internal/catalog"
	"github.com/five82/reelboard/internal/clips"
	"github.com/five82/reelboard/internal/nav"
	"github.com/five82/reelboard/internal/prefs"
	"github.com/five82/reelboard/internal/script"
	"github.com/five82/reelboard/internal/trends"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Generator: script.NewGenerator(time.Millisecond, zerolog.Nop()),
		Logger:    zerolog.Nop(),
		ThemeName: "Studio",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func pressAll(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = press(t, m, k)
	}
	return m
}

// jump presses a section key and plays the scroll animation to the end.
func jump(t *testing.T, m Model, k string) Model {
	t.Helper()
	m, _ = press(t, m, k)
	for i := 0; i < 1000 && m.scrolling; i++ {
		m = update(t, m, scrollFrameMsg{})
	}
	if m.scrolling {
		t.Fatalf("scroll to %s never settled", k)
	}
	return m
}

func TestNewDefaults(t *testing.T) {
	m := newTestModel(t)

	if got := m.ActiveSection(); got != nav.SectionTrend {
		t.Fatalf("ActiveSection() = %q, want %q", got, nav.SectionTrend)
	}
	if m.trendView != trends.NewView() {
		t.Fatalf("trendView = %+v, want defaults", m.trendView)
	}
	if m.clipRange.Start() != clips.DefaultStart || m.clipRange.End() != clips.DefaultEnd {
		t.Fatalf("clip range = %d-%d, want %d-%d", m.clipRange.Start(), m.clipRange.End(), clips.DefaultStart, clips.DefaultEnd)
	}
	if !m.captions || !m.effects {
		t.Fatalf("captions/effects = %v/%v, want both on", m.captions, m.effects)
	}
	if got := m.formValues(); got != script.DefaultValues() {
		t.Fatalf("formValues() = %+v, want defaults", got)
	}
	if len(m.offsets) != len(nav.Entries()) {
		t.Fatalf("offsets = %v, want one per section", m.offsets)
	}
}

func TestJumpActivatesSection(t *testing.T) {
	m := newTestModel(t)
	for i, e := range nav.Entries() {
		m = jump(t, m, string(rune('1'+i)))
		if got := m.ActiveSection(); got != e.Section {
			t.Fatalf("after key %d ActiveSection() = %q, want %q", i+1, got, e.Section)
		}
		if m.page.YOffset != m.offsets[i] {
			t.Fatalf("after key %d YOffset = %d, want %d", i+1, m.page.YOffset, m.offsets[i])
		}
	}

	// And back up again.
	m = jump(t, m, "1")
	if got := m.ActiveSection(); got != nav.SectionTrend {
		t.Fatalf("ActiveSection() = %q, want trend", got)
	}
}

func TestManualScrollStopsAnimation(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, "4")
	if !m.scrolling || cmd == nil {
		t.Fatalf("expected scroll animation to start")
	}
	m, _ = press(t, m, "j")
	if m.scrolling {
		t.Fatalf("manual scroll should stop the animation")
	}
	m = update(t, m, scrollFrameMsg{})
	if m.page.YOffset > 1+m.scrollStep {
		t.Fatalf("YOffset = %d after stopped animation", m.page.YOffset)
	}
}

func TestTrendKeys(t *testing.T) {
	m := newTestModel(t)

	for _, want := range []trends.Region{trends.RegionUS, trends.RegionEU, trends.RegionGlobal} {
		m, _ = press(t, m, "r")
		if m.trendView.Region != want || m.region.Value() != want {
			t.Fatalf("region = %q/%q, want %q", m.trendView.Region, m.region.Value(), want)
		}
	}

	m, _ = press(t, m, "s")
	if m.trendView.Key != trends.SortTitle || m.trendView.Descending {
		t.Fatalf("after s: %+v, want title ascending flag", m.trendView)
	}
	m, _ = press(t, m, "s")
	if !m.trendView.Descending {
		t.Fatalf("second s should flip direction")
	}
	m, _ = press(t, m, "v")
	if m.trendView != trends.NewView() {
		t.Fatalf("after v: %+v, want volume descending", m.trendView)
	}
}

func TestClippingKeys(t *testing.T) {
	m := jump(t, newTestModel(t), "3")

	m = pressAll(t, m, "]")
	if got := m.clipRange.Start(); got != clips.DefaultStart+1 {
		t.Fatalf("start = %d, want %d", got, clips.DefaultStart+1)
	}
	m = pressAll(t, m, "}")
	if got := m.clipRange.End(); got != clips.DefaultEnd+1 {
		t.Fatalf("end = %d, want %d", got, clips.DefaultEnd+1)
	}
	m = pressAll(t, m, "[", "{")
	if m.clipRange.Start() != clips.DefaultStart || m.clipRange.End() != clips.DefaultEnd {
		t.Fatalf("range = %d-%d, want defaults", m.clipRange.Start(), m.clipRange.End())
	}

	m = pressAll(t, m, "c", "x")
	if m.captions || m.effects {
		t.Fatalf("captions/effects should be off")
	}
}

func TestClipSearch(t *testing.T) {
	m := jump(t, newTestModel(t), "3")

	m, _ = press(t, m, "/")
	if !m.searching {
		t.Fatalf("/ should open search")
	}
	// Section keys are typed into the box while searching.
	m = pressAll(t, m, "i", "t", "y")
	if got := m.searchInput.Value(); got != "ity" {
		t.Fatalf("search value = %q, want ity", got)
	}
	// Matches "Virality" and "Productivity" in tags and titles.
	results := clips.Search(m.sources, m.searchInput.Value())
	if len(results) != 2 || results[0].ID != "pod2" || results[1].ID != "creator1" {
		t.Fatalf("results = %+v, want pod2 and creator1", results)
	}
	if out := m.renderSourcesPanel(70); !strings.Contains(out, "Sources (2)") {
		t.Fatalf("sources panel missing result count:\n%s", out)
	}

	m, _ = press(t, m, "enter")
	if m.searching || m.searchInput.Value() != "ity" {
		t.Fatalf("enter should keep the query and leave search")
	}

	m = pressAll(t, m, "/", "esc")
	if m.searching || m.searchInput.Value() != "" {
		t.Fatalf("esc should clear the query and leave search")
	}
}

func TestGenerateScript(t *testing.T) {
	m := jump(t, newTestModel(t), "2")

	m = pressAll(t, m, "t", "l")
	if m.tone.Value() != script.ToneEntertaining {
		t.Fatalf("tone = %q, want Entertaining", m.tone.Value())
	}
	if m.length.Value() != script.Length60 {
		t.Fatalf("length = %q, want 60s", m.length.Value())
	}

	m, cmd := press(t, m, "enter")
	if !m.generating || cmd == nil {
		t.Fatalf("enter should start generation")
	}
	m = update(t, m, cmd())
	if m.generating {
		t.Fatalf("generation should be finished")
	}
	if want := script.Compose(m.formValues()); m.draft != want {
		t.Fatalf("draft = %q, want %q", m.draft, want)
	}
	if !strings.Contains(m.draft, "Entertaining narrator") {
		t.Fatalf("draft missing tone: %q", m.draft)
	}
}

func TestStaleScriptResultsIgnored(t *testing.T) {
	m := newTestModel(t)
	m.generating = true

	m = update(t, m, scriptMsg{err: script.ErrSuperseded})
	if !m.generating {
		t.Fatalf("superseded result should leave the newer request pending")
	}

	m = update(t, m, scriptMsg{result: script.Result{Seq: 42, Script: "stale"}})
	if m.draft != "" {
		t.Fatalf("stale result applied: %q", m.draft)
	}
}

func TestGenerateRequiresTrend(t *testing.T) {
	m := jump(t, newTestModel(t), "2")

	m, _ = press(t, m, "e")
	if !m.editing || m.focusIdx != fieldTrend {
		t.Fatalf("e should focus the trend field")
	}
	m.fields[fieldTrend].SetValue("")

	m, cmd := press(t, m, "enter")
	if cmd != nil || m.generating {
		t.Fatalf("generation should not start without a trend")
	}
	if m.formErr == "" {
		t.Fatalf("expected a form error")
	}
}

func TestFormEditing(t *testing.T) {
	m := jump(t, newTestModel(t), "2")

	m = pressAll(t, m, "e", "tab")
	if m.focusIdx != fieldAudience {
		t.Fatalf("focusIdx = %d, want audience", m.focusIdx)
	}
	m = pressAll(t, m, "tab", "tab")
	if m.focusIdx != fieldTrend {
		t.Fatalf("focus should wrap to trend, got %d", m.focusIdx)
	}
	m = pressAll(t, m, "!", "esc")
	if m.editing {
		t.Fatalf("esc should leave the form")
	}
	if got := m.fields[fieldTrend].Value(); !strings.HasSuffix(got, "!") {
		t.Fatalf("trend = %q, want typed suffix", got)
	}

	m = pressAll(t, m, "t", "R")
	if got := m.formValues(); got != script.DefaultValues() {
		t.Fatalf("reset values = %+v, want defaults", got)
	}
}

func TestSchedulingAndOptimizationKeys(t *testing.T) {
	m := jump(t, newTestModel(t), "4")
	m, _ = press(t, m, "f")
	if m.frequency.Value() != catalog.FrequencyTwiceDaily {
		t.Fatalf("frequency = %q, want Twice Daily", m.frequency.Value())
	}

	m = jump(t, m, "5")
	m = pressAll(t, m, "m", "b")
	if m.metric.Value() != catalog.MetricLikes {
		t.Fatalf("metric = %q, want likes", m.metric.Value())
	}
	if m.variant.Value() != catalog.VariantB {
		t.Fatalf("variant = %q, want B", m.variant.Value())
	}
	// f belongs to scheduling and is ignored here.
	m, _ = press(t, m, "f")
	if m.frequency.Value() != catalog.FrequencyTwiceDaily {
		t.Fatalf("frequency changed outside its section")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "T")
	if m.theme.Name != "Midnight" {
		t.Fatalf("theme = %q, want Midnight", m.theme.Name)
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Midnight" {
		t.Fatalf("saved theme = %q, want Midnight", p.Theme)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "?")
	if !m.showHelp {
		t.Fatalf("? should open help")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}
	m, _ = press(t, m, "r")
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
	if m.trendView.Region != trends.RegionGlobal {
		t.Fatalf("key that closed help should not reach the panel")
	}
}

func TestViewRendersChrome(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"reelboard", "Producer", "Trend Identification", "Viral Optimization", "Topics"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View() missing %q", want)
		}
	}
	if New(Options{}).View() != "Loading..." {
		t.Fatalf("View() before sizing should show loading")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatalf("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should quit")
	}
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	tests := []struct {
		name    string
		section string
		open    string
		typing  func(Model) bool
	}{
		{"form", "2", "e", func(m Model) bool { return m.editing }},
		{"search", "3", "/", func(m Model) bool { return m.searching }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := jump(t, newTestModel(t), tt.section)
			m, _ = press(t, m, tt.open)
			if !tt.typing(m) {
				t.Fatalf("%s should focus an input", tt.open)
			}

			// q is text while an input has focus.
			m, _ = press(t, m, "q")
			if !tt.typing(m) {
				t.Fatalf("q should be typed, not quit")
			}

			_, cmd := press(t, m, "ctrl+c")
			if cmd == nil {
				t.Fatalf("ctrl+c should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatalf("ctrl+c should quit")
			}
		})
	}
}

func TestHighlightDraftMarksEveryKeyword(t *testing.T) {
	draft := script.Compose(script.DefaultValues())
	mark := func(s string) string { return "<" + s + ">" }
	want := strings.Count(script.Highlight(draft, mark), "<")

	for _, width := range []int{12, 24, 60} {
		got := highlightDraft(draft, width, mark)
		if n := strings.Count(got, "<"); n != want {
			t.Fatalf("width %d: %d marks, want %d", width, n, want)
		}
		if n := strings.Count(got, ">"); n != want {
			t.Fatalf("width %d: %d closing marks, want %d", width, n, want)
		}
	}
}

func TestSchedulingPlanningCards(t *testing.T) {
	m := newTestModel(t)
	for _, width := range []int{140, 80} {
		out := m.renderSchedulingSection(width)
		for _, want := range []string{"Google Sheets Integration", "Upload Frequency", "Publishing Windows", "Metadata Toolkit", "Upload Queue"} {
			if !strings.Contains(out, want) {
				t.Fatalf("width %d: scheduling section missing %q", width, want)
			}
		}
	}
}
