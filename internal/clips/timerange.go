package clips

// Trim slider bounds, in seconds.
const (
	DomainMin    = 0
	DomainMax    = 120
	StartMax     = 90 // the start slider stops short of the domain end
	DefaultStart = 12
	DefaultEnd   = 42
)

// Range is the [start, end] trim window of a clip. Setters keep
// DomainMin <= start < end <= DomainMax.
type Range struct {
	start int
	end   int
}

// NewRange returns the default trim window.
func NewRange() Range {
	return Range{start: DefaultStart, end: DefaultEnd}
}

// Start returns the window start in seconds.
func (r Range) Start() int { return r.start }

// End returns the window end in seconds.
func (r Range) End() int { return r.end }

// SetStart moves the start, clamped below end and inside the slider bounds.
func (r *Range) SetStart(seconds int) {
	upper := min(r.end-1, StartMax)
	r.start = clamp(seconds, DomainMin, upper)
}

// SetEnd moves the end, clamped above start and inside the slider bounds.
func (r *Range) SetEnd(seconds int) {
	r.end = clamp(seconds, r.start+1, DomainMax)
}

// NudgeStart shifts the start by delta seconds.
func (r *Range) NudgeStart(delta int) {
	r.SetStart(r.start + delta)
}

// NudgeEnd shifts the end by delta seconds.
func (r *Range) NudgeEnd(delta int) {
	r.SetEnd(r.end + delta)
}

// Duration is the length of the window, never negative.
func (r Range) Duration() int {
	return max(r.end-r.start, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
