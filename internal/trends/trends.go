// Package trends filters and orders the trend discovery table.
package trends

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Region is a coarse geographic bucket used to subset trend records.
type Region string

const (
	RegionGlobal Region = "global"
	RegionUS     Region = "us"
	RegionEU     Region = "eu"
)

// Regions lists the region filters in display order.
var Regions = []Region{RegionGlobal, RegionUS, RegionEU}

// Label returns the human readable name of the region.
func (r Region) Label() string {
	switch r {
	case RegionUS:
		return "United States"
	case RegionEU:
		return "European Union"
	default:
		return "Global"
	}
}

// Source identifies where a trend signal was observed.
type Source string

const (
	SourceGoogleTrends Source = "Google Trends"
	SourceTikTok       Source = "TikTok"
	SourceYouTube      Source = "YouTube"
)

// SortKey selects the ordering column of the trend table.
type SortKey int

const (
	SortVolume SortKey = iota
	SortTitle
)

func (k SortKey) String() string {
	if k == SortTitle {
		return "Alphabetical"
	}
	return "Volume"
}

// defaultDescending is the direction a key starts with when it becomes active.
func (k SortKey) defaultDescending() bool {
	return k == SortVolume
}

// Record is one row of the trend table.
type Record struct {
	ID           string
	Title        string
	SearchVolume int // 0-100
	Source       Source
	Region       Region
	ChangePct    int
}

// Filter returns the records in region. RegionGlobal keeps every record.
func Filter(records []Record, region Region) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if region == RegionGlobal || rec.Region == region {
			out = append(out, rec)
		}
	}
	return out
}

// Sort returns a sorted copy of records.
//
// For SortVolume, descending orders the highest search volume first. For
// SortTitle the flag is read the other way round: descending yields A-Z
// and ascending yields Z-A. Title sorting starts ascending, so a freshly
// selected alphabetical sort shows Z-A first. Callers rely on this pairing.
func Sort(records []Record, key SortKey, descending bool) []Record {
	out := slices.Clone(records)
	switch key {
	case SortTitle:
		coll := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Record) int {
			if descending {
				return coll.CompareString(a.Title, b.Title)
			}
			return coll.CompareString(b.Title, a.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b Record) int {
			if descending {
				return cmp.Compare(b.SearchVolume, a.SearchVolume)
			}
			return cmp.Compare(a.SearchVolume, b.SearchVolume)
		})
	}
	return out
}
