package exporter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appleradio-scraper/schedule"
)

var exportShows = []schedule.Show{
	{
		Station:     "Apple Music 1",
		TimeSlot:    "12:05 – 14:00",
		TimeSlotUTC: "19:05 – 21:00",
		Title:       "The Morning Show",
		Description: "Your favorite hits to start the day",
		ShowURL:     "https://music.apple.com/us/curator/the-morning-show",
	},
	{
		Station:     "Apple Music 1",
		TimeSlot:    "02:00 – 05:00",
		TimeSlotUTC: "09:00 – 12:00",
		Title:       "Rap Life Radio",
	},
	{
		Station:     "Apple Music Hits",
		TimeSlot:    "22:00 – 00:00",
		TimeSlotUTC: "05:00 – 07:00",
		Title:       "Dale Play",
	},
}

func TestSaveJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	scrapedAt := time.Date(2025, time.July, 1, 8, 30, 0, 0, time.UTC)

	require.NoError(t, SaveJSON(path, []string{"Apple Music 1", "Apple Music Hits"}, exportShows, scrapedAt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var archive Archive
	require.NoError(t, json.Unmarshal(data, &archive))
	assert.Equal(t, "2025-07-01T08:30:00Z", archive.ScrapedAt)
	assert.Equal(t, []string{"Apple Music 1", "Apple Music Hits"}, archive.StationsScraped)
	require.Len(t, archive.Shows, 3)
	assert.Equal(t, "The Morning Show", archive.Shows[0].Title)
}

func TestSaveCSVSortsByStationThenStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, SaveCSV(path, exportShows, time.Now()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 rows

	assert.Equal(t, csvHeader, records[0])
	// Within Apple Music 1 the 02:00 slot precedes 12:05; Apple Music Hits
	// follows by station name.
	assert.Equal(t, "Rap Life Radio", records[1][2])
	assert.Equal(t, "The Morning Show", records[2][2])
	assert.Equal(t, "Dale Play", records[3][2])
}

func TestSaveICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.ics")
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	shows := append([]schedule.Show{}, exportShows...)
	shows = append(shows, schedule.Show{
		Station:  "Apple Music 1",
		TimeSlot: "14:00 – 15:00",
		Title:    "MISSING SHOW (14:00 - 15:00)",
	})

	require.NoError(t, SaveICS(path, shows, day, "America/Los_Angeles"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "Apple Music 1: The Morning Show")
	assert.Contains(t, text, "Apple Music Hits: Dale Play")
	assert.NotContains(t, text, "MISSING")
	assert.Equal(t, 3, strings.Count(text, "BEGIN:VEVENT"))
}
