package schedule

import "strings"

// Period is the half-day marker on a parsed time component.
type Period int

const (
	PeriodUnknown Period = iota
	AM
	PM
)

// String returns the marker as it appears in schedule text.
func (p Period) String() string {
	switch p {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return ""
	}
}

// Opposite flips AM to PM and back. PeriodUnknown stays unknown.
func (p Period) Opposite() Period {
	switch p {
	case AM:
		return PM
	case PM:
		return AM
	default:
		return PeriodUnknown
	}
}

// TimeComponent is one side of a time range: an hour, a minute and an
// optional AM/PM marker. The hour is 1-12 when a marker is present and may
// run to 23 when it is not.
type TimeComponent struct {
	Hour   int
	Minute int
	Period Period
}

// Hour24 returns the component's hour on the 24-hour clock.
func (c TimeComponent) Hour24() int {
	h := c.Hour
	switch c.Period {
	case AM:
		if h == 12 {
			h = 0
		}
	case PM:
		if h != 12 {
			h += 12
		}
	}
	return h % 24
}

// Minutes returns the component as minutes since midnight.
func (c TimeComponent) Minutes() int {
	return c.Hour24()*60 + c.Minute
}

// TimeRange is a start/end pair pulled out of schedule text. Raw keeps the
// matched substring. Resolved is true once both sides carry a definite
// period; an unresolved range must not be converted between zones.
type TimeRange struct {
	Start    TimeComponent
	End      TimeComponent
	Raw      string
	Resolved bool
}

// Show is one schedule entry for a station.
type Show struct {
	Station     string `json:"station,omitempty"`
	StationURL  string `json:"station_url,omitempty"`
	TimeSlot    string `json:"time_slot,omitempty"`     // display zone, canonical HH:MM form
	TimeSlotUTC string `json:"time_slot_utc,omitempty"` // source zone, canonical HH:MM form
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ArtworkURL  string `json:"artwork_url,omitempty"`
	ShowURL     string `json:"show_url,omitempty"`
	RawText     string `json:"raw_text,omitempty"`
}

// Gap is an uncovered span between two consecutive shows.
type Gap struct {
	Minutes     int    `json:"gap_minutes"`
	AfterShow   string `json:"after_show"`
	BeforeShow  string `json:"before_show"`
	ClockRange  string `json:"gap_time"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
}

// CoverageReport is the result of checking one station's schedule against
// the full 24-hour window.
type CoverageReport struct {
	Station      string   `json:"station"`
	ShowCount    int      `json:"show_count"`
	TotalMinutes int      `json:"total_minutes"`
	Percent      float64  `json:"percent"`
	Gaps         []Gap    `json:"gaps,omitempty"`
	Overlaps     []string `json:"overlaps,omitempty"`
	Passed       bool     `json:"passed"`
}

// gapSentinel marks synthetic entries so downstream consumers can filter
// them out. Kept as a substring check because exported files round-trip
// through CSV.
const gapSentinel = "MISSING"

// IsGapPlaceholder reports whether a title belongs to a synthetic gap entry
// rather than a real show.
func IsGapPlaceholder(title string) bool {
	return strings.Contains(title, gapSentinel)
}
