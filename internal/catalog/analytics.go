package catalog

// Metric is a chart series of the analytics panel.
type Metric string

const (
	MetricViews  Metric = "views"
	MetricLikes  Metric = "likes"
	MetricShares Metric = "shares"
)

// Metrics lists the chart series in display order.
var Metrics = []Metric{MetricViews, MetricLikes, MetricShares}

// Label returns the capitalised metric name.
func (m Metric) Label() string {
	switch m {
	case MetricLikes:
		return "Likes"
	case MetricShares:
		return "Shares"
	default:
		return "Views"
	}
}

// ChartPoint is one day of engagement numbers.
type ChartPoint struct {
	Label  string
	Views  int
	Likes  int
	Shares int
}

// Value returns the point's figure for m.
func (p ChartPoint) Value(m Metric) int {
	switch m {
	case MetricLikes:
		return p.Likes
	case MetricShares:
		return p.Shares
	default:
		return p.Views
	}
}

// VariantKey names one side of an A/B test.
type VariantKey string

const (
	VariantA VariantKey = "A"
	VariantB VariantKey = "B"
)

// VariantKeys lists the A/B sides in display order.
var VariantKeys = []VariantKey{VariantA, VariantB}

// Variant is a precomputed title/thumbnail combination.
type Variant struct {
	Title      string
	Thumbnail  string
	Conversion string
	IsWinner   bool
}

// Recommendation is an optimization tip.
type Recommendation struct {
	ID     int
	Title  string
	Detail string
}

// Hashtag is a scored hashtag suggestion.
type Hashtag struct {
	Tag    string
	Score  int
	Action string
}

// Engagement returns the seven-day chart data.
func Engagement() []ChartPoint {
	return []ChartPoint{
		{Label: "Mon", Views: 9200, Likes: 1450, Shares: 320},
		{Label: "Tue", Views: 10800, Likes: 1630, Shares: 410},
		{Label: "Wed", Views: 13700, Likes: 2100, Shares: 520},
		{Label: "Thu", Views: 15600, Likes: 2450, Shares: 670},
		{Label: "Fri", Views: 18200, Likes: 3120, Shares: 890},
		{Label: "Sat", Views: 20100, Likes: 3560, Shares: 1040},
		{Label: "Sun", Views: 18900, Likes: 3370, Shares: 980},
	}
}

// Variants returns the A/B test candidates keyed by side.
func Variants() map[VariantKey]Variant {
	return map[VariantKey]Variant{
		VariantA: {Title: "This AI Tool Replaced 6 Hours of Work", Thumbnail: "Gradient Pulse • Automation dashboard hero", Conversion: "CTR 3.4%"},
		VariantB: {Title: "Automate Your Viral Clips in 60 Seconds", Thumbnail: "Creator reaction + dashboard overlay", Conversion: "CTR 4.9%", IsWinner: true},
	}
}

// Recommendations returns the optimization playbook tips.
func Recommendations() []Recommendation {
	return []Recommendation{
		{ID: 1, Title: "Keyword Density", Detail: "Include 'AI automation' in the first 20 characters to capture 31% more watch time from search traffic."},
		{ID: 2, Title: "Hook Refinement", Detail: "Lead with transformation payoff within 1.2 seconds. Use kinetic typography overlays with primary accent pulses."},
		{ID: 3, Title: "Retention Anchors", Detail: "Add a mid-roll micro CTA at 21s. Creator economy segments respond with +18% average session duration."},
	}
}

// Hashtags returns the scored hashtag suggestions.
func Hashtags() []Hashtag {
	return []Hashtag{
		{Tag: "#AIAutomation", Score: 97, Action: "Use"},
		{Tag: "#CreatorOps", Score: 91, Action: "Test"},
		{Tag: "#ShortFormLab", Score: 86, Action: "Use"},
		{Tag: "#ProductivityStack", Score: 79, Action: "Monitor"},
	}
}
