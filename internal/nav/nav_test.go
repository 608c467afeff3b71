package nav

import "testing"

func TestActive(t *testing.T) {
	cases := []struct {
		name string
		tops []int
		want Section
	}{
		{"nothing crossed defaults to first", []int{200, 900, 1600, 2300, 3000}, SectionTrend},
		{"first crossed", []int{0, 900, 1600, 2300, 3000}, SectionTrend},
		{"exactly at threshold counts", []int{-700, 160, 860, 1560, 2260}, SectionContent},
		{"one past threshold does not", []int{-700, 161, 860, 1560, 2260}, SectionTrend},
		{"later sections win ties", []int{-900, -100, 0, 100, 150}, SectionOptimization},
		{"missing tops are ignored", []int{-900, -200}, SectionContent},
		{"empty", nil, SectionTrend},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Active(tc.tops, DefaultThreshold); got != tc.want {
				t.Fatalf("Active(%v) = %q, want %q", tc.tops, got, tc.want)
			}
		})
	}
}

func TestActive_NonMonotonicTopsStillUsesLastQualifying(t *testing.T) {
	// A collapsed middle section can leave tops out of order; the scan keeps
	// the last qualifying entry in definition order.
	tops := []int{-50, 500, 10, 600, 700}
	if got := Active(tops, DefaultThreshold); got != SectionClipping {
		t.Fatalf("Active = %q, want %q", got, SectionClipping)
	}
}

func TestActiveAt(t *testing.T) {
	offsets := []int{0, 40, 80, 120, 160}
	if got := ActiveAt(offsets, 0, 4); got != SectionTrend {
		t.Fatalf("ActiveAt top = %q, want trend", got)
	}
	if got := ActiveAt(offsets, 78, 4); got != SectionClipping {
		t.Fatalf("ActiveAt 78 = %q, want clipping", got)
	}
	if got := ActiveAt(offsets, 1000, 4); got != SectionOptimization {
		t.Fatalf("ActiveAt bottom = %q, want optimization", got)
	}
}

func TestEntriesAndLookup(t *testing.T) {
	es := Entries()
	if len(es) != 5 {
		t.Fatalf("Entries() returned %d, want 5", len(es))
	}
	es[0].Label = "mutated"
	if e, _ := Lookup(SectionTrend); e.Label != "Trend Identification" {
		t.Fatalf("Entries should return a copy; got label %q", e.Label)
	}
	if _, ok := Lookup(Section("nope")); ok {
		t.Fatalf("Lookup(nope) ok = true, want false")
	}
	if IndexOf(SectionScheduling) != 3 {
		t.Fatalf("IndexOf(scheduling) = %d, want 3", IndexOf(SectionScheduling))
	}
	if IndexOf(Section("nope")) != -1 {
		t.Fatalf("IndexOf(nope) = %d, want -1", IndexOf(Section("nope")))
	}
}
