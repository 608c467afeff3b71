// Package catalog holds the fixed sample data rendered by the dashboard.
// Every accessor returns a fresh copy so panels can never mutate shared rows.
package catalog

import (
	"slices"

	"github.com/five82/reelboard/internal/clips"
	"github.com/five82/reelboard/internal/trends"
)

// StatCard is a headline figure on the trend panel.
type StatCard struct {
	Label   string
	Value   string
	Caption string
}

// Trends returns the trend table rows.
func Trends() []trends.Record {
	return []trends.Record{
		{ID: "1", Title: "AI Productivity Hacks", SearchVolume: 94, Source: trends.SourceYouTube, Region: trends.RegionGlobal, ChangePct: 28},
		{ID: "2", Title: "Eco-Friendly Travel Tips", SearchVolume: 88, Source: trends.SourceGoogleTrends, Region: trends.RegionEU, ChangePct: 17},
		{ID: "3", Title: "MrBeast Philanthropy Challenge", SearchVolume: 97, Source: trends.SourceTikTok, Region: trends.RegionUS, ChangePct: 39},
		{ID: "4", Title: "24hr Productivity Sprints", SearchVolume: 81, Source: trends.SourceTikTok, Region: trends.RegionGlobal, ChangePct: 22},
		{ID: "5", Title: "Mindful Morning Routines", SearchVolume: 76, Source: trends.SourceGoogleTrends, Region: trends.RegionEU, ChangePct: 9},
		{ID: "6", Title: "Podcast: Creator Burnout", SearchVolume: 73, Source: trends.SourceYouTube, Region: trends.RegionUS, ChangePct: 14},
		{ID: "7", Title: "AI Voiceover Companions", SearchVolume: 84, Source: trends.SourceTikTok, Region: trends.RegionGlobal, ChangePct: 31},
	}
}

// TrendStats returns the headline cards above the trend table.
func TrendStats() []StatCard {
	return []StatCard{
		{Label: "Signals In Queue", Value: "142", Caption: "+18% vs last 24h"},
		{Label: "Average Growth Velocity", Value: "27%", Caption: "+6% vs last 7d"},
		{Label: "Cross-Platform Overlap", Value: "63%", Caption: "Tripled sources"},
		{Label: "Priority Alerts", Value: "9", Caption: "Ready for analysis"},
	}
}

// ClipSources returns the clip library.
func ClipSources() []clips.Source {
	sources := []clips.Source{
		{ID: "mb1", Title: "MrBeast - $1 vs $100,000 Vacation", Channel: "MrBeast", Duration: "18:15", Tags: []string{"High Energy", "Challenge", "Travel"}, Category: clips.CategoryMrBeast},
		{ID: "pod1", Title: "Diary of a CEO - Automation Journey", Channel: "Steven Bartlett", Duration: "1:08:40", Tags: []string{"Entrepreneurship", "Mindset"}, Category: clips.CategoryPodcast},
		{ID: "pod2", Title: "Colin and Samir - Viral Cuts Deep Dive", Channel: "Colin & Samir", Duration: "52:17", Tags: []string{"Strategy", "Virality"}, Category: clips.CategoryPodcast},
		{ID: "creator1", Title: "Ali Abdaal - Productivity OS", Channel: "Ali Abdaal", Duration: "14:02", Tags: []string{"Productivity", "Systems"}, Category: clips.CategoryCreator},
	}
	for i := range sources {
		sources[i].Tags = slices.Clone(sources[i].Tags)
	}
	return sources
}

// Scene is one storyboard card of the video blueprint preview.
type Scene struct {
	Title  string
	Visual string
	Audio  string
}

// Storyboard returns the blueprint scenes shown beside the script draft.
func Storyboard() []Scene {
	return []Scene{
		{Title: "Scene 01 – Hook", Visual: "Dynamic text-on-screen, b-roll of cluttered workspace", Audio: "Energetic synth rise, narrator hook"},
		{Title: "Scene 02 – Contrast", Visual: "Split screen workflow comparison, animated metrics", Audio: "Ambient pulse, subtle whoosh transitions"},
		{Title: "Scene 03 – How-To", Visual: "Macro shots of automation dashboard, highlight primary blue accent states", Audio: "Narrator walkthrough, soft clicks"},
		{Title: "Scene 04 – CTA", Visual: "End card with schedule preview & CTA overlay", Audio: "Music resolve, CTA emphasis"},
	}
}
