package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"appleradio-scraper/schedule"
)

// csvHeader is the column order of the tabular export.
var csvHeader = []string{
	"station",
	"time_slot",
	"show_title",
	"description",
	"image_url",
	"time_slot_utc",
	"show_url",
	"scraped_at",
}

// SaveCSV writes one row per show, sorted by station and then by the
// display-zone start time so the file reads as a day's programme per
// station.
func SaveCSV(filename string, shows []schedule.Show, scrapedAt time.Time) error {
	rows := make([]schedule.Show, len(shows))
	copy(rows, shows)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Station != rows[j].Station {
			return rows[i].Station < rows[j].Station
		}
		return slotSortKey(rows[i].TimeSlot) < slotSortKey(rows[j].TimeSlot)
	})

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %v", err)
	}
	stamp := scrapedAt.Format(time.RFC3339)
	for _, show := range rows {
		record := []string{
			show.Station,
			show.TimeSlot,
			show.Title,
			show.Description,
			show.ArtworkURL,
			show.TimeSlotUTC,
			show.ShowURL,
			stamp,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row: %v", err)
		}
	}
	return writer.Error()
}

// slotSortKey derives a numeric key from a slot's start time. Shows without
// a parsable slot sort last.
func slotSortKey(slot string) int {
	start, _, ok := schedule.SlotMinutes(slot)
	if !ok {
		return 1 << 20
	}
	return start
}
