// Package nav defines the dashboard sections and derives which one is
// active from the current scroll position.
package nav

// Section identifies one dashboard panel.
type Section string

const (
	SectionTrend        Section = "trend"
	SectionContent      Section = "content"
	SectionClipping     Section = "clipping"
	SectionScheduling   Section = "scheduling"
	SectionOptimization Section = "optimization"
)

// DefaultThreshold is the distance from the viewport top, in pixels, a
// section heading must cross before it becomes active.
const DefaultThreshold = 160

// Entry describes a sidebar item.
type Entry struct {
	Section     Section
	Label       string
	Description string
	Anchor      string
}

var entries = []Entry{
	{SectionTrend, "Trend Identification", "Cross-platform signals and insights", "trend-identification"},
	{SectionContent, "Content Creation", "Script drafting and media automation", "content-creation"},
	{SectionClipping, "Video Clipping", "Smart trimming and compliance", "video-clipping"},
	{SectionScheduling, "Scheduling & Uploading", "Calendar sync across channels", "scheduling-uploading"},
	{SectionOptimization, "Viral Optimization", "Optimization playbooks & analytics", "viral-optimization"},
}

// Entries returns the sections in definition order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for s.
func Lookup(s Section) (Entry, bool) {
	for _, e := range entries {
		if e.Section == s {
			return e, true
		}
	}
	return Entry{}, false
}

// IndexOf returns the definition position of s, or -1.
func IndexOf(s Section) int {
	for i, e := range entries {
		if e.Section == s {
			return i
		}
	}
	return -1
}

// Active returns the last section, in definition order, whose top edge is at
// or above threshold. tops holds each section's top relative to the viewport
// top, indexed like Entries; missing trailing values are treated as not yet
// rendered. With nothing crossed the first section is active.
func Active(tops []int, threshold int) Section {
	current := entries[0].Section
	for i, e := range entries {
		if i >= len(tops) {
			break
		}
		if tops[i] <= threshold {
			current = e.Section
		}
	}
	return current
}

// ActiveAt is Active for document offsets: offsets are absolute section
// starts and scrollTop is the current viewport position.
func ActiveAt(offsets []int, scrollTop, threshold int) Section {
	tops := make([]int, len(offsets))
	for i, off := range offsets {
		tops[i] = off - scrollTop
	}
	return Active(tops, threshold)
}
