package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// rangePatterns is the prioritized table of time-range shapes, most
// specific first. Every pattern runs against both the raw and the
// LIVE-stripped text; the longest matched substring across the whole table
// wins, since longer matches carry more disambiguating detail.
var rangePatterns = []*regexp.Regexp{
	// 7:05 PM – 9:00 PM
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)?\s*[–—-]\s*\d{1,2}:\d{2}\s*(?:AM|PM)`),
	// 7:05 – 9:00 PM
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*[–—-]\s*\d{1,2}:\d{2}\s*(?:AM|PM)`),
	// 7:05 PM – 9 AM
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)?\s*[–—-]\s*\d{1,2}\s*(?:AM|PM)`),
	// 11PM – 12AM
	regexp.MustCompile(`(?i)\d{1,2}\s*(?:AM|PM)\s*[–—-]\s*\d{1,2}\s*(?:AM|PM)`),
	// 7:05 – 9 PM
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*[–—-]\s*\d{1,2}\s*(?:AM|PM)`),
	// 7 – 9:00 PM
	regexp.MustCompile(`(?i)\d{1,2}\s*[–—-]\s*\d{1,2}:\d{2}\s*(?:AM|PM)`),
	// 7 – 9 PM
	regexp.MustCompile(`(?i)\d{1,2}\s*[–—-]\s*\d{1,2}\s*(?:AM|PM)`),
}

var (
	livePrefixRe = regexp.MustCompile(`(?i)^LIVE\s*[·•]?\s*`)
	componentRe  = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?$`)
	rangeSplitRe = regexp.MustCompile(`\s*[–—-]\s*`)
)

// StripLiveMarker removes a leading "LIVE" badge and its separator glyph.
func StripLiveMarker(text string) string {
	return livePrefixRe.ReplaceAllString(text, "")
}

// ParseTimeComponent parses a single time expression like "7:05 PM", "11PM"
// or "9" into its hour, minute and period. Returns false when the string is
// not a time expression.
func ParseTimeComponent(s string) (TimeComponent, bool) {
	m := componentRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeComponent{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return TimeComponent{}, false
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return TimeComponent{}, false
		}
	}

	period := PeriodUnknown
	switch strings.ToUpper(m[3]) {
	case "AM":
		period = AM
	case "PM":
		period = PM
	}
	if period != PeriodUnknown && (hour < 1 || hour > 12) {
		return TimeComponent{}, false
	}

	return TimeComponent{Hour: hour, Minute: minute, Period: period}, true
}

// FindTimeRange locates the best time-range substring in the text, or
// returns false when no pattern matches.
func FindTimeRange(text string) (string, bool) {
	stripped := StripLiveMarker(text)
	best := ""
	for _, re := range rangePatterns {
		for _, view := range []string{text, stripped} {
			for _, m := range re.FindAllString(view, -1) {
				if len(m) > len(best) {
					best = m
				}
			}
		}
	}
	return best, best != ""
}

// ResolveTimeRange finds the best time range in the text and fills in
// missing AM/PM markers where the other side provides enough context.
// Returns false when the text contains no recognizable range at all; that
// is an expected outcome, not an error. A returned range may still be
// unresolved when neither side carried a period.
func ResolveTimeRange(text string) (TimeRange, bool) {
	raw, ok := FindTimeRange(text)
	if !ok {
		return TimeRange{}, false
	}

	parts := rangeSplitRe.Split(raw, 2)
	if len(parts) != 2 {
		return TimeRange{}, false
	}
	start, okStart := ParseTimeComponent(parts[0])
	end, okEnd := ParseTimeComponent(parts[1])
	if !okStart || !okEnd {
		return TimeRange{}, false
	}

	r := TimeRange{Start: start, End: end, Raw: raw}
	r.ResolvePeriods()
	return r, true
}

// ResolvePeriods infers a missing AM/PM marker from the other side of the
// range. An hour of exactly 12 on the side lacking a marker inherits the
// other side's period (12 is the boundary, not a crossing). Otherwise the
// period-less side keeps the known period when end >= start and flips when
// end < start, which signals a crossing over noon or midnight. When neither
// side has a marker the range stays unresolved; guessing would fabricate
// data.
func (r *TimeRange) ResolvePeriods() bool {
	switch {
	case r.Start.Period != PeriodUnknown && r.End.Period != PeriodUnknown:
		r.Resolved = true
	case r.Start.Period != PeriodUnknown:
		switch {
		case r.End.Hour == 12:
			r.End.Period = r.Start.Period
		case r.End.Hour >= r.Start.Hour:
			r.End.Period = r.Start.Period
		default:
			r.End.Period = r.Start.Period.Opposite()
		}
		r.Resolved = true
	case r.End.Period != PeriodUnknown:
		switch {
		case r.Start.Hour == 12:
			r.Start.Period = r.End.Period
		case r.End.Hour >= r.Start.Hour:
			r.Start.Period = r.End.Period
		default:
			r.Start.Period = r.End.Period.Opposite()
		}
		r.Resolved = true
	default:
		r.Resolved = false
	}
	return r.Resolved
}
