package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentMorningShowScenario(t *testing.T) {
	text := "LIVE · 7:05 – 9:00 PM The Morning Show Your favorite hits to start the day"

	r, ok := ResolveTimeRange(text)
	require.True(t, ok)
	assert.Equal(t, "7:05 – 9:00 PM", r.Raw)
	assert.Equal(t, "19:05 – 21:00", r.Canonical())

	cleaned := CleanText(text, r.Raw)
	title, description := SplitTitleDescription(cleaned, Hint{})
	assert.Equal(t, "The Morning Show", title)
	assert.Equal(t, "Your favorite hits to start the day", description)
}

func TestSegmentTimeOnlyBlock(t *testing.T) {
	text := "11PM – 12AM"

	r, ok := ResolveTimeRange(text)
	require.True(t, ok)
	require.True(t, r.Resolved)

	title, description := SplitTitleDescription(CleanText(text, r.Raw), Hint{})
	assert.Empty(t, title)
	assert.Empty(t, description)
}

func TestSegmentIdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{
		"The Morning Show Your favorite hits to start the day",
		"Rap Life Radio Hits you need",
		"The Agenda",
	}
	for _, cleaned := range inputs {
		title, _ := SplitTitleDescription(cleaned, Hint{})
		again, rest := SplitTitleDescription(CleanText(title, ""), Hint{})
		assert.Equal(t, title, again, "re-segmenting %q must not change the title", cleaned)
		assert.Empty(t, rest)
	}
}

func TestCleanTextRepairsConcatenation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rangeRaw string
		want     string
	}{
		{
			"lowercase-uppercase seam",
			"Rap LifeRadio with Ebro Darden",
			"",
			"Rap Life Radio with Ebro Darden",
		},
		{
			"doubled range collapses",
			"7 – 9 PM7 – 9 PMThe Agenda",
			"7 – 9 PM",
			"The Agenda",
		},
		{
			"generic sweep catches leftover variants",
			"The Agenda 10 – 11 PM rap roundup",
			"",
			"The Agenda rap roundup",
		},
		{
			"live marker dropped",
			"LIVE · The Chart Show",
			"",
			"The Chart Show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.text, tt.rangeRaw))
		})
	}
}

func TestScanTitleBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		cleaned   string
		wantTitle string
		wantDesc  string
	}{
		{
			"show is inclusive",
			"The Morning Show Your favorite hits to start the day",
			"The Morning Show",
			"Your favorite hits to start the day",
		},
		{
			"show suppresses nearer weak boundary",
			"The Hits Show countdown continues",
			"The Hits Show",
			"countdown continues",
		},
		{
			"ending word closes the title",
			"Rap Life Radio hosted daily",
			"Rap Life Radio",
			"hosted daily",
		},
		{
			"lowercase word ends the title before it",
			"Dale Play with Sofia",
			"Dale Play",
			"with Sofia",
		},
		{
			"capitalized run fallback",
			"Chart Takeover Countdown",
			"Chart Takeover Countdown",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, desc := SplitTitleDescription(tt.cleaned, Hint{})
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestHintOverridesScan(t *testing.T) {
	cleaned := "The Agenda Best of rap culture"

	title, desc := SplitTitleDescription(cleaned, Hint{Title: "The Agenda"})
	assert.Equal(t, "The Agenda", title)
	assert.Equal(t, "Best of rap culture", desc)

	// A hint that is just a time string is ignored.
	title, _ = SplitTitleDescription(cleaned, Hint{Title: "7 – 9 PM"})
	assert.Equal(t, "The Agenda", title)
}

func TestDescriptionHintRejectsTitleEcho(t *testing.T) {
	title, desc := SplitTitleDescription("The Agenda", Hint{
		Title:       "The Agenda",
		Description: "The Agenda",
	})
	assert.Equal(t, "The Agenda", title)
	assert.Empty(t, desc)
}

func TestStripDoubledTitleFromDescription(t *testing.T) {
	cleaned := "The Agenda The Agenda The Agenda Best of rap"
	title, desc := SplitTitleDescription(cleaned, Hint{Title: "The Agenda"})
	assert.Equal(t, "The Agenda", title)
	assert.Equal(t, "Best of rap", desc)
}
