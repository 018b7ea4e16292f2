package schedule

import (
	"fmt"
	"regexp"
	"sort"
)

const (
	// GapTolerance is the longest silence, in minutes, still treated as
	// continuous coverage.
	GapTolerance = 5
	dayMinutes   = 1440
)

var (
	canonicalSlotRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[–—-]\s*(\d{1,2}):(\d{2})`)
)

// SlotMinutes parses a time-slot string into start and end minutes since
// midnight. The canonical 24-hour form is tried first; 12-hour slots fall
// back to the range resolver. An end before the start means the slot wraps
// past midnight, so the end gains a day.
func SlotMinutes(slot string) (start, end int, ok bool) {
	if m := canonicalSlotRe.FindStringSubmatch(slot); m != nil {
		start = atoi(m[1])*60 + atoi(m[2])
		end = atoi(m[3])*60 + atoi(m[4])
	} else {
		r, found := ResolveTimeRange(slot)
		if !found || !r.Resolved {
			return 0, 0, false
		}
		start = r.Start.Minutes()
		end = r.End.Minutes()
	}
	if end < start {
		end += dayMinutes
	}
	return start, end, true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

type timedShow struct {
	title string
	start int
	end   int
}

// VerifyCoverage checks that a station's resolved shows tile the full
// 24-hour window. Shows without a parsable slot and synthetic gap entries
// from earlier runs are excluded; gaps wider than the tolerance are
// reported with the bounding show titles; overlapping entries are flagged
// as data-quality warnings but never auto-fixed. The check is soft: a run
// passes at 1440 minutes minus the tolerance, reflecting rounding in the
// source data.
func VerifyCoverage(station string, shows []Show) CoverageReport {
	report := CoverageReport{Station: station}

	var timed []timedShow
	for _, s := range shows {
		if IsGapPlaceholder(s.Title) {
			continue
		}
		start, end, ok := SlotMinutes(s.TimeSlotUTC)
		if !ok {
			continue
		}
		timed = append(timed, timedShow{title: s.Title, start: start, end: end})
	}
	report.ShowCount = len(timed)

	sort.Slice(timed, func(i, j int) bool {
		return timed[i].start < timed[j].start
	})

	maxEnd := -1
	for i, ts := range timed {
		report.TotalMinutes += ts.end - ts.start

		// Overlaps are checked against the running furthest end, not just
		// the previous start, so a short show swallowed by a long one still
		// trips the warning.
		if maxEnd >= 0 && ts.start < maxEnd {
			report.Overlaps = append(report.Overlaps,
				fmt.Sprintf("'%s' starts %d min before the previous show ends", ts.title, maxEnd-ts.start))
		}
		if ts.end > maxEnd {
			maxEnd = ts.end
		}

		if i == len(timed)-1 {
			break
		}
		next := timed[i+1]
		gap := next.start - ts.end
		if gap > GapTolerance {
			report.Gaps = append(report.Gaps, Gap{
				Minutes:     gap,
				AfterShow:   ts.title,
				BeforeShow:  next.title,
				ClockRange:  clockRange(ts.end, next.start),
				StartMinute: ts.end % dayMinutes,
				EndMinute:   next.start % dayMinutes,
			})
		}
	}

	report.Percent = float64(report.TotalMinutes) / dayMinutes * 100
	report.Passed = report.TotalMinutes >= dayMinutes-GapTolerance
	return report
}

// clockRange formats a minute span as "HH:MM - HH:MM" on the 24-hour clock.
func clockRange(start, end int) string {
	start %= dayMinutes
	end %= dayMinutes
	return fmt.Sprintf("%02d:%02d - %02d:%02d", start/60, start%60, end/60, end%60)
}

// Placeholder builds a synthetic schedule entry marking an uncovered span.
// The sentinel title keeps it distinguishable from real shows in every
// export.
func (g Gap) Placeholder(station string) Show {
	return Show{
		Station:     station,
		TimeSlotUTC: fmt.Sprintf("%02d:%02d – %02d:%02d", g.StartMinute/60, g.StartMinute%60, g.EndMinute/60, g.EndMinute%60),
		Title:       fmt.Sprintf("%s SHOW (%s)", gapSentinel, g.ClockRange),
	}
}

// InsertGapPlaceholders appends a synthetic entry for every reported gap.
// The input shows are returned unchanged ahead of the placeholders.
func InsertGapPlaceholders(station string, shows []Show, report CoverageReport) []Show {
	out := shows
	for _, g := range report.Gaps {
		out = append(out, g.Placeholder(station))
	}
	return out
}
