// Package ui provides the terminal dashboard for Reelboard.
//
// # Architecture Overview
//
// The dashboard is a single Bubble Tea program. Every workflow section is
// rendered, top to bottom, into one scrolling viewport next to a fixed
// sidebar, mirroring a long single-page studio layout:
//
//   - Trend Identification: stat cards and a region-filtered, sortable trend table
//   - Content Creation: script form, generated draft, storyboard and pipeline status
//   - Video Clipping: source search, highlight window and clip options
//   - Scheduling & Uploading: posting frequency, upload queue and weekly calendar
//   - Viral Optimization: engagement chart, A/B variant card, playbook and hashtags
//
// # Section Tracking
//
// While rendering, the model records the line each section starts on. The
// active section is the last one whose heading is within ActiveRowThreshold
// rows of the viewport top (see nav.ActiveAt). The sidebar highlights it and
// section keys act on it. Jumping with 1-5 animates the viewport toward the
// section in ScrollFrameInterval ticks.
//
// # Script Drafts
//
// Generating a draft runs script.Generator in a tea.Cmd. A newer request
// supersedes the older one; results from superseded or cancelled requests are
// dropped so only the latest draft is shown.
//
// # Key Bindings
//
//   - 1-5: Jump to a section
//   - j/k, ctrl+d/u, g/G: Scroll
//   - r, v, s: Region, sort by volume, sort by title (trends)
//   - t, l, e, enter, R: Tone, length, edit inputs, generate, reset (content)
//   - /, [ ], { }, c, x: Search, nudge start, nudge end, captions, effects (clipping)
//   - f: Posting frequency (scheduling)
//   - m, b: Metric, A/B variant (optimization)
//   - T: Cycle theme (saved to prefs)
//   - h or ?: Help
//   - q or Ctrl+C: Exit
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Generator: script.NewGenerator(cfg.GenerateDelay, logger),
//		Logger:    logger,
//		ThemeName: p.Theme,
//		PrefsPath: prefsPath,
//	})
package ui
