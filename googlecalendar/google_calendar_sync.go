package googlecalendar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"appleradio-scraper/schedule"
)

// SyncShows mirrors a day of scraped shows onto a Google Calendar. Events
// already on the calendar are matched by a content hash of summary and
// times; matched events are left alone or updated, unmatched remote events
// are deleted, and missing shows are inserted.
func SyncShows(service *calendar.Service, calendarID string, shows []schedule.Show, day time.Time, displayZone string, clearAll bool) error {
	if clearAll {
		if err := ClearCalendar(service, calendarID); err != nil {
			return fmt.Errorf("error clearing Google Calendar: %v", err)
		}
	}

	loc, err := time.LoadLocation(displayZone)
	if err != nil {
		return fmt.Errorf("error loading display timezone: %v", err)
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	existingEvents, err := GetAllEvents(service, calendarID)
	if err != nil {
		return fmt.Errorf("error fetching all events from Google Calendar: %v", err)
	}

	existingEventsMap := make(map[string]*calendar.Event)
	for _, event := range existingEvents {
		if event == nil || event.Status == "cancelled" {
			continue
		}
		if event.Start == nil || event.End == nil {
			continue
		}
		eventID := generateEventID(event.Summary, event.Start.DateTime, event.End.DateTime)
		existingEventsMap[eventID] = event
	}

	wantedEventsMap := make(map[string]*calendar.Event)
	for i := range shows {
		show := &shows[i]
		if show.TimeSlot == "" || schedule.IsGapPlaceholder(show.Title) {
			continue
		}
		startMin, endMin, ok := schedule.SlotMinutes(show.TimeSlot)
		if !ok {
			fmt.Printf("Skipping show '%s' with unparsable slot %q\n", show.Title, show.TimeSlot)
			continue
		}

		start := midnight.Add(time.Duration(startMin) * time.Minute)
		end := midnight.Add(time.Duration(endMin) * time.Minute)
		if !end.After(start) {
			end = end.Add(24 * time.Hour)
		}

		summary := fmt.Sprintf("%s: %s", show.Station, show.Title)
		startStr := start.Format(time.RFC3339)
		endStr := end.Format(time.RFC3339)
		eventID := generateEventID(summary, startStr, endStr)

		wantedEventsMap[eventID] = &calendar.Event{
			Summary:     summary,
			Description: show.Description,
			Start: &calendar.EventDateTime{
				DateTime: startStr,
				TimeZone: displayZone,
			},
			End: &calendar.EventDateTime{
				DateTime: endStr,
				TimeZone: displayZone,
			},
		}
	}

	for eventID, existingEvent := range existingEventsMap {
		if _, found := wantedEventsMap[eventID]; !found {
			fmt.Printf("Deleting event '%s' (ID: %s)\n", existingEvent.Summary, eventID)
			err := service.Events.Delete(calendarID, existingEvent.Id).Do()
			if err != nil {
				return fmt.Errorf("error deleting event from Google Calendar: %v", err)
			}
		}
	}

	for eventID, gEvent := range wantedEventsMap {
		if existingEvent, found := existingEventsMap[eventID]; found {
			if existingEvent.Summary != gEvent.Summary || existingEvent.Start.DateTime != gEvent.Start.DateTime || existingEvent.End.DateTime != gEvent.End.DateTime {
				fmt.Printf("Updating event '%s' (ID: %s)\n", gEvent.Summary, eventID)
				_, err = service.Events.Update(calendarID, existingEvent.Id, gEvent).Do()
				if err != nil {
					return fmt.Errorf("error updating event in Google Calendar: %v", err)
				}
			}
		} else {
			fmt.Printf("Inserting new event '%s' (ID: %s)\n", gEvent.Summary, eventID)
			_, err = service.Events.Insert(calendarID, gEvent).Do()
			if err != nil {
				return fmt.Errorf("error inserting event into Google Calendar: %v", err)
			}
		}
	}

	fmt.Println("Schedule synced with Google Calendar successfully.")
	return nil
}

func generateEventID(summary, start, end string) string {
	hash := md5.New()
	hash.Write([]byte(summary + start + end))
	return hex.EncodeToString(hash.Sum(nil))
}
