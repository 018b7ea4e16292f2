package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appleradio-scraper/schedule"
)

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const stationHTML = `
<html><body>
<nav><ul>
  <li class="nav-item">Home</li>
  <li class="nav-item">Radio</li>
</ul></nav>
<section>
  <div class="schedule-item">
    <span class="badge">LIVE · 7:05 – 9:00 PM</span>
    <h3 class="item-title">The Morning Show</h3>
    <p class="item-description">Your favorite hits to start the day</p>
    <img src="//artwork.example.com/morning.jpg">
    <a href="/us/curator/the-morning-show">More</a>
  </div>
  <div class="schedule-item">
    <span>11PM – 12AM</span>
  </div>
  <div class="schedule-item">
    <span>5 – 7 AM</span>
    <strong>Dale Play Radio</strong>
  </div>
</section>
</body></html>`

func testConverter() *schedule.Converter {
	return &schedule.Converter{Offset: 7}
}

func TestExtractShows(t *testing.T) {
	shows, err := ExtractShows(stationHTML, testConverter())
	require.NoError(t, err)
	require.Len(t, shows, 3)

	morning := shows[0]
	assert.Equal(t, "19:05 – 21:00", morning.TimeSlotUTC)
	assert.Equal(t, "12:05 – 14:00", morning.TimeSlot)
	assert.Equal(t, "The Morning Show", morning.Title)
	assert.Equal(t, "Your favorite hits to start the day", morning.Description)
	assert.Equal(t, "https://artwork.example.com/morning.jpg", morning.ArtworkURL)
	assert.Equal(t, "https://music.apple.com/us/curator/the-morning-show", morning.ShowURL)

	timeOnly := shows[1]
	assert.Equal(t, "23:00 – 00:00", timeOnly.TimeSlotUTC)
	assert.Empty(t, timeOnly.Title)
	assert.Empty(t, timeOnly.Description)

	hinted := shows[2]
	assert.Equal(t, "05:00 – 07:00", hinted.TimeSlotUTC)
	assert.Equal(t, "Dale Play Radio", hinted.Title)
}

func TestExtractShowsFiltersNavigation(t *testing.T) {
	shows, err := ExtractShows(stationHTML, testConverter())
	require.NoError(t, err)
	for _, s := range shows {
		assert.NotEqual(t, "Home", s.Title)
		assert.NotEqual(t, "Radio", s.Title)
	}
}

func TestExtractShowsTimePatternFallback(t *testing.T) {
	html := `
<html><body>
<ul>
  <li role="listitem">4 – 5 AM Chill Vibes relaxing sounds</li>
  <li role="listitem">About the app</li>
</ul>
</body></html>`

	shows, err := ExtractShows(html, testConverter())
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "04:00 – 05:00", shows[0].TimeSlotUTC)
	assert.Equal(t, "Chill Vibes", shows[0].Title)
}

func TestBuildImageMap(t *testing.T) {
	html := `
<html><body>
<div class="wrapper">
  <div>
    <img data-src="//img.example.com/a.jpg">
    <span>9 – 11 AM The Agenda rap roundup every weekday</span>
  </div>
</div>
</body></html>`

	doc := mustParse(t, html)
	imageMap := BuildImageMap(doc)
	require.NotEmpty(t, imageMap)
	for _, url := range imageMap {
		assert.Equal(t, "https://img.example.com/a.jpg", url)
	}
}

func TestIsValidShow(t *testing.T) {
	tests := []struct {
		name string
		show schedule.Show
		want bool
	}{
		{"nav entry", schedule.Show{Title: "Search"}, false},
		{"timed show", schedule.Show{Title: "Anything", TimeSlotUTC: "05:00 – 07:00"}, true},
		{"untimed but show-like", schedule.Show{Title: "Chart Show"}, true},
		{"untimed takeover", schedule.Show{Title: "Artist Takeover"}, true},
		{"untimed noise", schedule.Show{Title: "Settings"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidShow(tt.show))
		})
	}
}
