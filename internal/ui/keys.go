package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	ForceQuit  key.Binding
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Confirm    key.Binding
	Tab        key.Binding

	// Sidebar
	Section1 key.Binding
	Section2 key.Binding
	Section3 key.Binding
	Section4 key.Binding
	Section5 key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Trend identification
	CycleRegion key.Binding
	SortVolume  key.Binding
	SortTitle   key.Binding

	// Content creation
	CycleTone   key.Binding
	CycleLength key.Binding
	EditForm    key.Binding
	Generate    key.Binding
	ResetForm   key.Binding

	// Video clipping
	Search    key.Binding
	StartBack key.Binding
	StartFwd  key.Binding
	EndBack   key.Binding
	EndFwd    key.Binding
	Captions  key.Binding
	Effects   key.Binding

	// Scheduling
	CycleFrequency key.Binding

	// Optimization
	CycleMetric  key.Binding
	CycleVariant key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit from anywhere"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave input"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),

		Section1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Trend Identification")),
		Section2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Content Creation")),
		Section3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Video Clipping")),
		Section4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "Scheduling & Uploading")),
		Section5: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "Viral Optimization")),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		CycleRegion: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Cycle region"),
		),
		SortVolume: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Sort by volume"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort by title"),
		),

		CycleTone: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle tone"),
		),
		CycleLength: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Cycle length"),
		),
		EditForm: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit script inputs"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Generate script"),
		),
		ResetForm: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset form"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search sources"),
		),
		StartBack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "Start -1s")),
		StartFwd:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "Start +1s")),
		EndBack:   key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "End -1s")),
		EndFwd:    key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "End +1s")),
		Captions: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle captions"),
		),
		Effects: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Toggle effects"),
		),

		CycleFrequency: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle frequency"),
		),

		CycleMetric: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Cycle metric"),
		),
		CycleVariant: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Switch A/B variant"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Section1, k.Up, k.Down, k.Help, k.Quit}
}
