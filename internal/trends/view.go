package trends

// View is the trend panel's filter and sort state.
type View struct {
	Region     Region
	Key        SortKey
	Descending bool
}

// NewView returns the panel defaults: every region, highest volume first.
func NewView() View {
	return View{Region: RegionGlobal, Key: SortVolume, Descending: true}
}

// SetRegion replaces the active region filter.
func (v *View) SetRegion(r Region) {
	v.Region = r
}

// PressSort applies a sort button press. Pressing the active key flips the
// direction; pressing the other key switches to it with its default direction.
func (v *View) PressSort(key SortKey) {
	if v.Key == key {
		v.Descending = !v.Descending
		return
	}
	v.Key = key
	v.Descending = key.defaultDescending()
}

// Apply filters and orders records according to the view.
func (v View) Apply(records []Record) []Record {
	return Sort(Filter(records, v.Region), v.Key, v.Descending)
}

// DirectionLabel describes the current ordering for display.
func (v View) DirectionLabel() string {
	switch {
	case v.Key == SortVolume && v.Descending:
		return "high → low"
	case v.Key == SortVolume:
		return "low → high"
	case v.Descending:
		return "A → Z"
	default:
		return "Z → A"
	}
}
