package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeComponent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeComponent
		ok    bool
	}{
		{"bare hour", "7", TimeComponent{Hour: 7}, true},
		{"hour and minute", "7:05", TimeComponent{Hour: 7, Minute: 5}, true},
		{"hour minute period", "7:05 PM", TimeComponent{Hour: 7, Minute: 5, Period: PM}, true},
		{"glued period", "11PM", TimeComponent{Hour: 11, Period: PM}, true},
		{"lowercase period", "9 am", TimeComponent{Hour: 9, Period: AM}, true},
		{"noon boundary", "12 PM", TimeComponent{Hour: 12, Period: PM}, true},
		{"24-hour without marker", "23", TimeComponent{Hour: 23}, true},
		{"surrounding spaces", "  8:30 AM ", TimeComponent{Hour: 8, Minute: 30, Period: AM}, true},
		{"no digits", "Show", TimeComponent{}, false},
		{"empty", "", TimeComponent{}, false},
		{"minute out of range", "9:60", TimeComponent{}, false},
		{"hour too big for marker", "13 PM", TimeComponent{}, false},
		{"hour too big", "25", TimeComponent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeComponent(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindTimeRangePrefersLongestMatch(t *testing.T) {
	// "9:00 PM" alone also fires a pattern; the fully specified range must
	// win because it is longer.
	text := "Station highlight at 9:00 PM tonight 7:05 PM – 9:00 PM The Evening Mix"
	got, ok := FindTimeRange(text)
	require.True(t, ok)
	assert.Equal(t, "7:05 PM – 9:00 PM", got)
}

func TestFindTimeRangeStripsLiveMarker(t *testing.T) {
	got, ok := FindTimeRange("LIVE · 7 – 9 PM The Morning Show")
	require.True(t, ok)
	assert.Equal(t, "7 – 9 PM", got)
}

func TestFindTimeRangePlainHyphen(t *testing.T) {
	got, ok := FindTimeRange("11PM - 12AM")
	require.True(t, ok)
	assert.Equal(t, "11PM - 12AM", got)
}

func TestResolveTimeRangeInference(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStart  Period
		wantEnd    Period
		wantStartH int
		wantEndH   int
	}{
		// End hour >= start hour: the bare side keeps the marked side's
		// period.
		{"5 to 7 AM", "5 – 7 AM", AM, AM, 5, 7},
		// End hour < start hour signals a crossing: the bare side flips.
		{"11 to 1 AM", "11 – 1 AM", PM, AM, 11, 1},
		// 12 is the boundary value, not a crossing: it inherits.
		{"12 to 1 AM", "12 – 1 AM", AM, AM, 12, 1},
		{"both marked", "11PM – 12AM", PM, AM, 11, 12},
		{"full form", "7:05 PM – 9:00 PM", PM, PM, 7, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ResolveTimeRange(tt.input)
			require.True(t, ok)
			require.True(t, r.Resolved)
			assert.Equal(t, tt.wantStart, r.Start.Period)
			assert.Equal(t, tt.wantEnd, r.End.Period)
			assert.Equal(t, tt.wantStartH, r.Start.Hour)
			assert.Equal(t, tt.wantEndH, r.End.Hour)
		})
	}
}

func TestResolvePeriodsMissingEnd(t *testing.T) {
	// Symmetric rule for the end side, reachable when ranges are rebuilt
	// from split text rather than the pattern table.
	r := TimeRange{
		Start: TimeComponent{Hour: 7, Minute: 5, Period: PM},
		End:   TimeComponent{Hour: 9},
	}
	require.True(t, r.ResolvePeriods())
	assert.Equal(t, PM, r.End.Period)

	r = TimeRange{
		Start: TimeComponent{Hour: 11, Period: PM},
		End:   TimeComponent{Hour: 1},
	}
	require.True(t, r.ResolvePeriods())
	assert.Equal(t, AM, r.End.Period)

	r = TimeRange{
		Start: TimeComponent{Hour: 11, Period: PM},
		End:   TimeComponent{Hour: 12},
	}
	require.True(t, r.ResolvePeriods())
	assert.Equal(t, PM, r.End.Period)
}

func TestResolvePeriodsNeitherSide(t *testing.T) {
	r := TimeRange{
		Start: TimeComponent{Hour: 5},
		End:   TimeComponent{Hour: 7},
		Raw:   "5 – 7",
	}
	assert.False(t, r.ResolvePeriods())
	assert.False(t, r.Resolved)
	// The original text survives so nothing downstream has to guess.
	assert.Equal(t, "5 – 7", r.Raw)
}

func TestResolveTimeRangeNoMatch(t *testing.T) {
	for _, text := range []string{"The Morning Show", "9", "", "Chart takeover with no times"} {
		_, ok := ResolveTimeRange(text)
		assert.False(t, ok, "expected no range in %q", text)
	}
}
