package exporter

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"appleradio-scraper/schedule"
)

// SaveICS writes one calendar event per show on the capture date in the
// display zone. Synthetic gap entries and shows without a display slot are
// skipped; a slot that wraps past midnight ends on the next day.
func SaveICS(filename string, shows []schedule.Show, day time.Time, displayZone string) error {
	loc, err := time.LoadLocation(displayZone)
	if err != nil {
		return fmt.Errorf("error loading display zone %q: %v", displayZone, err)
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, show := range shows {
		if show.TimeSlot == "" || schedule.IsGapPlaceholder(show.Title) {
			continue
		}
		start, end, ok := schedule.SlotMinutes(show.TimeSlot)
		if !ok {
			continue
		}

		event := cal.AddEvent(eventUID(show))
		event.SetCreatedTime(day)
		event.SetStartAt(midnight.Add(time.Duration(start) * time.Minute))
		event.SetEndAt(midnight.Add(time.Duration(end) * time.Minute))
		event.SetSummary(eventSummary(show))
		if show.Description != "" {
			event.SetDescription(show.Description)
		}
		if show.ShowURL != "" {
			event.SetURL(show.ShowURL)
		}
	}

	if err := os.WriteFile(filename, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("error writing ICS file: %v", err)
	}
	return nil
}

func eventSummary(show schedule.Show) string {
	if show.Title == "" {
		return show.Station
	}
	return show.Station + ": " + show.Title
}

func eventUID(show schedule.Show) string {
	hash := md5.Sum([]byte(show.Station + show.TimeSlot + show.Title))
	return hex.EncodeToString(hash[:]) + "@appleradio-scraper"
}
