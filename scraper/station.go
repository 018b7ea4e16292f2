package scraper

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"appleradio-scraper/schedule"
)

// ScrapeStation runs the full pipeline for one station: fetch the rendered
// page, extract its schedule items and stamp every show with the station
// identity. A failure anywhere returns nil so sibling stations keep going.
func ScrapeStation(browser playwright.Browser, name, url string, conv *schedule.Converter) []schedule.Show {
	fmt.Printf("Fetching %s schedule from: %s\n", name, url)

	html, err := FetchPage(browser, url)
	if err != nil {
		fmt.Printf("Failed to fetch %s: %v\n", name, err)
		return nil
	}

	shows, err := ExtractShows(html, conv)
	if err != nil {
		fmt.Printf("Error extracting shows for %s: %v\n", name, err)
		return nil
	}

	for i := range shows {
		shows[i].Station = name
		shows[i].StationURL = url
	}

	fmt.Printf("Found %d shows for %s\n", len(shows), name)
	return shows
}
