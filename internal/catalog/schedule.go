package catalog

// Platform is an upload destination.
type Platform string

const (
	PlatformTikTok        Platform = "TikTok"
	PlatformYouTubeShorts Platform = "YouTube Shorts"
)

// Badge is the two-letter marker used in compact rows.
func (p Platform) Badge() string {
	if p == PlatformTikTok {
		return "TT"
	}
	return "YS"
}

// UploadStatus is the pipeline state of a scheduled upload.
type UploadStatus string

const (
	StatusQueued    UploadStatus = "Queued"
	StatusRendered  UploadStatus = "Rendered"
	StatusPublished UploadStatus = "Published"
)

// ScheduleEntry is an upcoming upload.
type ScheduleEntry struct {
	ID       string
	Platform Platform
	Time     string
	Title    string
	Status   UploadStatus
}

// Slot is a publishing window on the weekly calendar.
type Slot struct {
	Platform Platform
	Time     string
}

// CalendarDay is one column of the weekly calendar.
type CalendarDay struct {
	Day   string
	Date  string
	Slots []Slot
}

// Frequency is the upload cadence.
type Frequency string

const (
	FrequencyDaily      Frequency = "Daily"
	FrequencyTwiceDaily Frequency = "Twice Daily"
)

// Frequencies lists the cadence options in display order.
var Frequencies = []Frequency{FrequencyDaily, FrequencyTwiceDaily}

// Schedule returns the upcoming uploads.
func Schedule() []ScheduleEntry {
	return []ScheduleEntry{
		{ID: "1", Platform: PlatformTikTok, Time: "Today • 09:30 AM", Title: "AI Productivity Hacks - Hook Variant A", Status: StatusQueued},
		{ID: "2", Platform: PlatformYouTubeShorts, Time: "Today • 07:00 PM", Title: "Automation Workflow Reveal", Status: StatusRendered},
		{ID: "3", Platform: PlatformTikTok, Time: "Tomorrow • 09:30 AM", Title: "Creator Burnout Story Cut", Status: StatusQueued},
	}
}

// Calendar returns the weekly publishing calendar.
func Calendar() []CalendarDay {
	return []CalendarDay{
		{Day: "Mon", Date: "13", Slots: []Slot{{PlatformTikTok, "09:30"}}},
		{Day: "Tue", Date: "14", Slots: []Slot{{PlatformYouTubeShorts, "10:00"}, {PlatformTikTok, "18:30"}}},
		{Day: "Wed", Date: "15", Slots: []Slot{{PlatformTikTok, "12:00"}}},
		{Day: "Thu", Date: "16", Slots: []Slot{{PlatformTikTok, "08:45"}, {PlatformYouTubeShorts, "19:00"}}},
		{Day: "Fri", Date: "17", Slots: []Slot{{PlatformTikTok, "09:30"}, {PlatformYouTubeShorts, "21:15"}}},
		{Day: "Sat", Date: "18", Slots: []Slot{{PlatformTikTok, "11:00"}}},
		{Day: "Sun", Date: "19"},
	}
}
