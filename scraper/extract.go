package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"appleradio-scraper/schedule"
)

// scheduleSelectors are tried in order until one matches more than a single
// element. The page markup shifts between releases, so the list runs from
// purpose-built test IDs down to generic item classes.
var scheduleSelectors = []string{
	`[data-testid*="schedule"]`,
	`[data-testid*="show"]`,
	`[data-testid*="program"]`,
	`.schedule-item`,
	`.show-item`,
	`[class*="schedule"]`,
	`[class*="show"]`,
	`[class*="item"]`,
}

const (
	titleSelectors = `h1, h2, h3, h4, h5, h6, [class*="title"], [class*="name"], [class*="heading"], strong, b, .typography-headline`
	descSelectors  = `[class*="description"], [class*="subtitle"], p, .typography-body, [class*="summary"]`

	// Longest raw-text excerpt kept on a show record.
	rawTextLimit = 200
	// Characters of item text used to key the artwork map.
	imageKeyLen = 60
)

// navTitles are navigation chrome that the generic selectors sometimes
// sweep up.
var navTitles = map[string]bool{
	"home":    true,
	"new":     true,
	"radio":   true,
	"search":  true,
	"sign in": true,
}

var timeRangeProbeRe = regexp.MustCompile(`(?i)\d{1,2}\s*[–—-]\s*\d{1,2}\s*(?:AM|PM)`)

// ExtractShows parses a station page's rendered HTML into show records.
func ExtractShows(html string, conv *schedule.Converter) ([]schedule.Show, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %v", err)
	}

	items := findScheduleItems(doc)
	imageMap := BuildImageMap(doc)

	var shows []schedule.Show
	items.Each(func(i int, s *goquery.Selection) {
		show, ok := extractShow(s, imageMap, conv)
		if ok && isValidShow(show) {
			shows = append(shows, show)
		}
	})
	return shows, nil
}

// findScheduleItems walks the selector cascade; when nothing structural
// matches it falls back to container elements whose text carries a time
// range.
func findScheduleItems(doc *goquery.Document) *goquery.Selection {
	for _, selector := range scheduleSelectors {
		items := doc.Find(selector)
		if items.Length() > 1 {
			return items
		}
	}
	return doc.Find("li, article").FilterFunction(func(i int, s *goquery.Selection) bool {
		text := s.Text()
		return len(text) < 400 && timeRangeProbeRe.MatchString(text)
	})
}

// extractShow pulls one show record out of a schedule item element. Every
// field is best-effort; a block that yields nothing usable returns false
// without affecting its siblings.
func extractShow(s *goquery.Selection, imageMap map[string]string, conv *schedule.Converter) (schedule.Show, bool) {
	fullText := normalizeSpace(s.Text())
	if fullText == "" {
		return schedule.Show{}, false
	}

	var show schedule.Show
	show.RawText = truncate(fullText, rawTextLimit)

	var rangeRaw string
	if rng, found := schedule.ResolveTimeRange(fullText); found {
		rangeRaw = rng.Raw
		if rng.Resolved {
			show.TimeSlotUTC = rng.Canonical()
			show.TimeSlot = conv.Convert(rng).Canonical()
		} else {
			// Not enough context to pin the periods down; keep the original
			// text rather than guess.
			show.TimeSlotUTC = rng.Raw
		}
	}

	hint := schedule.Hint{
		Title:       structuralCandidate(s, titleSelectors),
		Description: structuralCandidate(s, descSelectors),
	}
	cleaned := schedule.CleanText(fullText, rangeRaw)
	show.Title, show.Description = schedule.SplitTitleDescription(cleaned, hint)

	show.ArtworkURL = extractArtwork(s, imageMap, fullText)
	show.ShowURL = extractLink(s)

	if show.TimeSlotUTC == "" && show.Title == "" && show.Description == "" {
		return schedule.Show{}, false
	}
	return show, true
}

// structuralCandidate returns the first sub-element text matching the
// selector list that is not itself a bare time string.
func structuralCandidate(s *goquery.Selection, selectors string) string {
	candidate := ""
	s.Find(selectors).EachWithBreak(func(i int, el *goquery.Selection) bool {
		text := normalizeSpace(el.Text())
		if text == "" || schedule.IsBareTimeString(text) {
			return true
		}
		candidate = text
		return false
	})
	return candidate
}

// extractArtwork reads the item's own image, falling back to the
// page-level artwork map for items whose image rendered outside the block.
func extractArtwork(s *goquery.Selection, imageMap map[string]string, fullText string) string {
	img := s.Find("img").First()
	if img.Length() > 0 {
		for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
			if src, exists := img.Attr(attr); exists && src != "" {
				return fixupURL(src)
			}
		}
	}
	if url, ok := imageMap[imageKey(fullText)]; ok {
		return url
	}
	return ""
}

func extractLink(s *goquery.Selection) string {
	href, exists := s.Find("a[href]").First().Attr("href")
	if !exists || href == "" {
		return ""
	}
	if !strings.HasPrefix(href, "http") {
		return "https://music.apple.com" + href
	}
	return href
}

// isValidShow filters out navigation chrome and entries with no schedule
// substance.
func isValidShow(show schedule.Show) bool {
	title := strings.ToLower(show.Title)
	if navTitles[title] {
		return false
	}
	if show.TimeSlotUTC == "" {
		for _, word := range []string{"show", "list", "takeover", "hits"} {
			if strings.Contains(title, word) {
				return true
			}
		}
		return false
	}
	return true
}

// BuildImageMap collects every artwork URL on the page and keys it by the
// opening text of its nearest item-like ancestor, so items whose own markup
// lost the <img> can still pick up their artwork.
func BuildImageMap(doc *goquery.Document) map[string]string {
	imageMap := make(map[string]string)
	doc.Find("img").Each(func(i int, img *goquery.Selection) {
		src := ""
		for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
			if v, exists := img.Attr(attr); exists && v != "" {
				src = fixupURL(v)
				break
			}
		}
		if src == "" {
			return
		}

		container := img.Parent()
		for container.Length() > 0 {
			text := normalizeSpace(container.Text())
			if len(text) >= 20 {
				key := imageKey(text)
				if _, taken := imageMap[key]; !taken {
					imageMap[key] = src
				}
				return
			}
			container = container.Parent()
		}
	})
	return imageMap
}

func imageKey(text string) string {
	return truncate(normalizeSpace(text), imageKeyLen)
}

func fixupURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

var spaceRe = regexp.MustCompile(`\s+`)

func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
