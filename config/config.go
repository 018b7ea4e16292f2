package config

import (
	"encoding/json"
	"os"
)

// Station pairs a station name with its schedule page URL.
type Station struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Config holds everything the scraper run needs: the stations to visit,
// the zone pair for conversion, output locations and the optional upload
// and calendar-sync settings.
type Config struct {
	Stations    []Station `json:"stations"`
	SourceZone  string    `json:"source_zone"`
	DisplayZone string    `json:"display_zone"`

	JSONFile string `json:"json_file"`
	CSVFile  string `json:"csv_file"`
	ICSFile  string `json:"ics_file"`

	// FillGaps appends synthetic placeholder entries for detected coverage
	// gaps to the exports.
	FillGaps bool `json:"fill_gaps"`

	GithubToken string `json:"github_token"`
	GithubRepo  string `json:"github_repo"`
	GithubPath  string `json:"github_path"`

	GoogleClientID     string `json:"google_client_id"`
	GoogleClientSecret string `json:"google_client_secret"`
	GoogleRedirectURI  string `json:"google_redirect_uri"`
	GoogleCalendarID   string `json:"google_calendar_id"`
	GoogleTokenFile    string `json:"google_token_file"`
}

// defaultStations is the station list used when the config file does not
// override it.
var defaultStations = []Station{
	{Name: "Apple Music 1", URL: "https://music.apple.com/us/radio/ra.978194965"},
	{Name: "Apple Music Hits", URL: "https://music.apple.com/us/radio/ra.1498155548"},
	{Name: "Apple Music Country", URL: "https://music.apple.com/us/radio/ra.1498157166"},
	{Name: "Apple Music Club", URL: "https://music.apple.com/us/radio/ra.1740613864"},
	{Name: "Apple Music Chill", URL: "https://music.apple.com/us/radio/ra.1740613859"},
	{Name: "Apple Music Classical", URL: "https://music.apple.com/us/radio/ra.1740614260"},
}

// LoadConfig reads a JSON config file and fills in defaults for anything
// the file leaves out.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	decoder := json.NewDecoder(file)
	err = decoder.Decode(&cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if len(cfg.Stations) == 0 {
		cfg.Stations = defaultStations
	}
	if cfg.SourceZone == "" {
		cfg.SourceZone = "UTC"
	}
	if cfg.DisplayZone == "" {
		cfg.DisplayZone = "America/Los_Angeles"
	}
	if cfg.JSONFile == "" {
		cfg.JSONFile = "apple_music_schedule.json"
	}
	if cfg.CSVFile == "" {
		cfg.CSVFile = "apple_music_schedule.csv"
	}
	if cfg.ICSFile == "" {
		cfg.ICSFile = "apple_music_schedule.ics"
	}
	if cfg.GoogleTokenFile == "" {
		cfg.GoogleTokenFile = "token.json"
	}
}
