// Package clips implements the clip library search and the trim range
// selector of the clipping panel.
package clips

import "strings"

// Category groups clip sources in the library.
type Category string

const (
	CategoryMrBeast Category = "MrBeast"
	CategoryPodcast Category = "Podcast"
	CategoryCreator Category = "Creator"
)

// Source is a long-form video available for excerpting.
type Source struct {
	ID       string
	Title    string
	Channel  string
	Duration string // display only, e.g. "1:08:40"
	Tags     []string
	Category Category
}

// Search returns the sources whose title, channel or any tag contains query,
// compared case-insensitively. An empty query returns sources unchanged.
// Order is preserved.
func Search(sources []Source, query string) []Source {
	if query == "" {
		return sources
	}
	q := strings.ToLower(query)
	out := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src.matches(q) {
			out = append(out, src)
		}
	}
	return out
}

func (s Source) matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(s.Title), lowerQuery) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(s.Channel), lowerQuery)
}
