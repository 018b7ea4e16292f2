package schedule

import (
	"fmt"
	"time"
)

// Converter shifts resolved time ranges from the source zone into the
// display zone using one fixed whole-hour offset. The offset is selected
// once per run: the upstream schedule is always published in a single fixed
// zone, so per-range DST lookups would only disagree with the page itself.
type Converter struct {
	Offset int // hours subtracted from source-zone times
}

// OffsetHours returns the whole-hour difference between the source and
// display zones at the given instant. For a UTC schedule viewed from
// America/Los_Angeles this yields 7 during daylight saving and 8 otherwise.
func OffsetHours(sourceZone, displayZone string, at time.Time) (int, error) {
	src, err := time.LoadLocation(sourceZone)
	if err != nil {
		return 0, fmt.Errorf("error loading source zone %q: %v", sourceZone, err)
	}
	dst, err := time.LoadLocation(displayZone)
	if err != nil {
		return 0, fmt.Errorf("error loading display zone %q: %v", displayZone, err)
	}

	_, srcOffset := at.In(src).Zone()
	_, dstOffset := at.In(dst).Zone()
	return (srcOffset - dstOffset) / 3600, nil
}

// NewConverter selects the effective offset between the two named zones at
// the given instant. Passing the instant in keeps the converter
// deterministic under test.
func NewConverter(sourceZone, displayZone string, at time.Time) (*Converter, error) {
	offset, err := OffsetHours(sourceZone, displayZone, at)
	if err != nil {
		return nil, err
	}
	return &Converter{Offset: offset}, nil
}

// Convert maps a resolved range into the display zone. An unresolved range
// is returned unchanged: converting a range with an unknown period would
// silently fabricate wrong data.
func (c *Converter) Convert(r TimeRange) TimeRange {
	if !r.Resolved {
		return r
	}
	out := TimeRange{
		Start:    shiftComponent(r.Start, c.Offset),
		End:      shiftComponent(r.End, c.Offset),
		Resolved: true,
	}
	out.Raw = out.Canonical()
	return out
}

// Inverse returns a converter that undoes this one.
func (c *Converter) Inverse() *Converter {
	return &Converter{Offset: -c.Offset}
}

// shiftComponent subtracts the offset on the 24-hour clock and re-derives
// the 12-hour representation. The period must come from the shifted hour,
// not the source component: crossing the offset can move a side between AM
// and PM.
func shiftComponent(c TimeComponent, offset int) TimeComponent {
	h := c.Hour24() - offset
	for h < 0 {
		h += 24
	}
	h %= 24

	period := AM
	if h >= 12 {
		period = PM
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return TimeComponent{Hour: hour12, Minute: c.Minute, Period: period}
}

// Canonical renders the range in the internal 24-hour "HH:MM – HH:MM" form.
// An unresolved range renders as its raw matched text.
func (r TimeRange) Canonical() string {
	if !r.Resolved {
		return r.Raw
	}
	return fmt.Sprintf("%02d:%02d – %02d:%02d",
		r.Start.Hour24(), r.Start.Minute, r.End.Hour24(), r.End.Minute)
}

// Clock12 renders the range with AM/PM markers for display. The shared
// marker is written once when both sides fall in the same half-day, the way
// the schedule pages themselves print it.
func (r TimeRange) Clock12() string {
	if !r.Resolved {
		return r.Raw
	}
	if r.Start.Period == r.End.Period {
		return fmt.Sprintf("%d:%02d – %d:%02d %s",
			r.Start.Hour, r.Start.Minute, r.End.Hour, r.End.Minute, r.End.Period)
	}
	return fmt.Sprintf("%d:%02d %s – %d:%02d %s",
		r.Start.Hour, r.Start.Minute, r.Start.Period,
		r.End.Hour, r.End.Minute, r.End.Period)
}
