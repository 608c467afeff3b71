package trends_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/reelboard/internal/catalog"
	"github.com/five82/reelboard/internal/trends"
)

func volumes(records []trends.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.SearchVolume
	}
	return out
}

func titles(records []trends.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestFilter_Regions(t *testing.T) {
	all := catalog.Trends()

	cases := []struct {
		name   string
		region trends.Region
		want   int
	}{
		{"global keeps everything", trends.RegionGlobal, len(all)},
		{"us", trends.RegionUS, 2},
		{"eu", trends.RegionEU, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := trends.Filter(all, tc.region)
			require.Len(t, got, tc.want)
			if tc.region == trends.RegionGlobal {
				assert.Equal(t, all, got)
				return
			}
			for _, rec := range got {
				assert.Equal(t, tc.region, rec.Region)
			}
		})
	}
}

func TestFilter_NoMatches(t *testing.T) {
	records := []trends.Record{{ID: "x", Region: trends.RegionUS}}
	assert.Empty(t, trends.Filter(records, trends.RegionEU))
}

func TestSort_VolumeDescending(t *testing.T) {
	got := trends.Sort(catalog.Trends(), trends.SortVolume, true)
	assert.Equal(t, []int{97, 94, 88, 84, 81, 76, 73}, volumes(got))
}

func TestSort_VolumeAscending(t *testing.T) {
	got := trends.Sort(catalog.Trends(), trends.SortVolume, false)
	assert.Equal(t, []int{73, 76, 81, 84, 88, 94, 97}, volumes(got))
}

func TestSort_TitleDirectionIsInverted(t *testing.T) {
	aToZ := []string{
		"24hr Productivity Sprints",
		"AI Productivity Hacks",
		"AI Voiceover Companions",
		"Eco-Friendly Travel Tips",
		"Mindful Morning Routines",
		"MrBeast Philanthropy Challenge",
		"Podcast: Creator Burnout",
	}
	got := trends.Sort(catalog.Trends(), trends.SortTitle, true)
	assert.Equal(t, aToZ, titles(got))

	got = trends.Sort(catalog.Trends(), trends.SortTitle, false)
	require.Len(t, got, len(aToZ))
	assert.Equal(t, aToZ[len(aToZ)-1], got[0].Title)
	assert.Equal(t, aToZ[0], got[len(got)-1].Title)
}

func TestSort_Idempotent(t *testing.T) {
	for _, key := range []trends.SortKey{trends.SortVolume, trends.SortTitle} {
		for _, desc := range []bool{true, false} {
			once := trends.Sort(catalog.Trends(), key, desc)
			twice := trends.Sort(once, key, desc)
			assert.Equal(t, once, twice, "key=%v desc=%v", key, desc)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := catalog.Trends()
	before := titles(in)
	_ = trends.Sort(in, trends.SortVolume, true)
	assert.Equal(t, before, titles(in))
}

func TestView_PressSort(t *testing.T) {
	v := trends.NewView()
	require.Equal(t, trends.SortVolume, v.Key)
	require.True(t, v.Descending)

	// Pressing the active key toggles direction.
	v.PressSort(trends.SortVolume)
	assert.False(t, v.Descending)

	// Switching keys resets to the key default, regardless of prior direction.
	v.PressSort(trends.SortTitle)
	assert.Equal(t, trends.SortTitle, v.Key)
	assert.False(t, v.Descending)

	v.PressSort(trends.SortTitle)
	assert.True(t, v.Descending)

	v.PressSort(trends.SortVolume)
	assert.Equal(t, trends.SortVolume, v.Key)
	assert.True(t, v.Descending)
}

func TestView_Apply(t *testing.T) {
	v := trends.NewView()
	v.SetRegion(trends.RegionUS)
	got := v.Apply(catalog.Trends())
	assert.Equal(t, []string{"MrBeast Philanthropy Challenge", "Podcast: Creator Burnout"}, titles(got))

	v.PressSort(trends.SortVolume)
	got = v.Apply(catalog.Trends())
	assert.Equal(t, []int{73, 97}, volumes(got))
}

func TestView_DirectionLabel(t *testing.T) {
	v := trends.NewView()
	assert.Equal(t, "high → low", v.DirectionLabel())
	v.PressSort(trends.SortTitle)
	assert.Equal(t, "Z → A", v.DirectionLabel())
	v.PressSort(trends.SortTitle)
	assert.Equal(t, "A → Z", v.DirectionLabel())
}

func TestRegionLabel(t *testing.T) {
	assert.Equal(t, "Global", trends.RegionGlobal.Label())
	assert.Equal(t, "United States", trends.RegionUS.Label())
	assert.Equal(t, "European Union", trends.RegionEU.Label())
}
