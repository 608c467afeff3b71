package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand tokens shared by every theme.
const (
	BrandPrimary   = "#3498db"
	BrandSecondary = "#2ecc71"
)

// Neutral is the grey scale the brand palette is built on.
var Neutral = map[int]string{
	50:  "#f9fafb",
	100: "#f2f4f7",
	200: "#e5e7eb",
	300: "#d2d6dc",
	400: "#9fa6b2",
	500: "#6b7280",
	600: "#4b5563",
	700: "#374151",
	800: "#1f2933",
	900: "#111827",
}

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Header, sidebar
	SurfaceAlt string // Panel bodies
	FocusBg    string // Active panel / sidebar entry

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text      string
	Muted     string
	Faint     string
	Primary   string
	Secondary string
	Warning   string
	Danger    string

	// Badge colors keyed by upload status and platform (lowercase).
	BadgeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:          lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		PrimaryText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		SecondaryText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		WarningText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Bold(true),
		Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),

		Pill: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		PillActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 1),

		badgeColors: t.BadgeColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	PrimaryText   lipgloss.Style
	SecondaryText lipgloss.Style
	WarningText   lipgloss.Style
	DangerText    lipgloss.Style

	Heading    lipgloss.Style
	Logo       lipgloss.Style
	Pill       lipgloss.Style
	PillActive lipgloss.Style

	badgeColors map[string]string
	background  string
	muted       string
}

// BadgeStyle returns a filled badge style for a status or platform name.
func (s Styles) BadgeStyle(name string) lipgloss.Style {
	color := s.badgeColors[strings.ToLower(strings.TrimSpace(name))]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

var themes = map[string]Theme{
	"Studio":   studioTheme(),
	"Midnight": midnightTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Studio", "Midnight", "Slate"}

// GetTheme returns a theme by name, falling back to Studio.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return studioTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func badges(primary, secondary, muted string) map[string]string {
	return map[string]string{
		"queued":         muted,
		"rendered":       primary,
		"published":      secondary,
		"tiktok":         primary,
		"youtube shorts": secondary,
		"use":            secondary,
		"test":           primary,
		"monitor":        muted,
	}
}

func studioTheme() Theme {
	// Brand palette on the dark end of the neutral scale.
	return Theme{
		Name: "Studio",

		Background: Neutral[900],
		Surface:    Neutral[800],
		SurfaceAlt: Neutral[900],
		FocusBg:    Neutral[700],

		SelectionBg:   BrandPrimary,
		SelectionText: Neutral[50],

		Border:      Neutral[600],
		BorderFocus: BrandPrimary,

		Text:      Neutral[100],
		Muted:     Neutral[400],
		Faint:     Neutral[500],
		Primary:   BrandPrimary,
		Secondary: BrandSecondary,
		Warning:   "#f1c40f",
		Danger:    "#e74c3c",

		BadgeColors: badges(BrandPrimary, BrandSecondary, Neutral[500]),
	}
}

func midnightTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Midnight",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:      "#cdcecf", // fg1
		Muted:     "#738091", // comment
		Faint:     "#71839b", // fg3
		Primary:   "#719cd6", // blue
		Secondary: "#81b29a", // green
		Warning:   "#dbc074", // yellow
		Danger:    "#c94f6d", // red

		BadgeColors: badges("#719cd6", "#81b29a", "#738091"),
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:      "#f1f5f9", // slate-100
		Muted:     "#94a3b8", // slate-400
		Faint:     "#64748b", // slate-500
		Primary:   "#38bdf8", // sky-400
		Secondary: "#22c55e", // green-500
		Warning:   "#f59e0b", // amber-500
		Danger:    "#ef4444", // red-500

		BadgeColors: badges("#38bdf8", "#22c55e", "#64748b"),
	}
}
