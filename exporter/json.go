package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"appleradio-scraper/schedule"
)

// Archive is the JSON export document.
type Archive struct {
	ScrapedAt       string          `json:"scraped_at"`
	StationsScraped []string        `json:"stations_scraped"`
	Shows           []schedule.Show `json:"shows"`
}

// SaveJSON writes the full capture to a JSON file.
func SaveJSON(filename string, stations []string, shows []schedule.Show, scrapedAt time.Time) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating JSON file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Archive{
		ScrapedAt:       scrapedAt.Format(time.RFC3339),
		StationsScraped: stations,
		Shows:           shows,
	})
}
