package schedule

import (
	"regexp"
	"strings"
	"unicode"
)

// Hint carries structural candidates pulled from an item's markup, flagged
// by role. Either field may be empty.
type Hint struct {
	Title       string
	Description string
}

// showEndingWords end a title when they appear mid-scan. "Show" itself is
// handled separately because it outranks every other boundary signal.
var showEndingWords = map[string]bool{
	"List":  true,
	"Hits":  true,
	"Radio": true,
	"Music": true,
}

// descriptionOpeners are phrases that start a blurb rather than continue a
// title.
var descriptionOpeners = []string{
	"Your favorite",
	"The best",
	"Best of",
	"All the",
	"A mix",
	"Listen",
}

var (
	// genericRangeRe sweeps time-range variants the exact-match removal
	// missed.
	genericRangeRe = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:AM|PM)?\s*[–—-]\s*\d{1,2}(?::\d{2})?\s*(?:AM|PM)?`)
	// timeOnlyRe recognizes a candidate that is nothing but a time range.
	timeOnlyRe = regexp.MustCompile(`(?i)^\d{1,2}(?::\d{2})?\s*(?:AM|PM)?\s*[–—-]\s*\d{1,2}(?::\d{2})?\s*(?:AM|PM)?$`)
	// lowerUpperRe finds word seams lost to markup concatenation.
	lowerUpperRe = regexp.MustCompile(`([a-z])([A-Z])`)
	// closingSeamRe finds a show-closing word glued to the next capitalized
	// word.
	closingSeamRe = regexp.MustCompile(`(Show|List|Hits|Radio|Music)([A-Z])`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// IsBareTimeString reports whether the text is nothing but a time range,
// which disqualifies it as a title or description candidate.
func IsBareTimeString(s string) bool {
	return timeOnlyRe.MatchString(strings.TrimSpace(s))
}

// CleanText strips the resolved time range, the LIVE badge and markup
// concatenation artifacts from an item's visible text, leaving only the
// words the segmenter should consider.
func CleanText(text, rangeRaw string) string {
	t := StripLiveMarker(strings.TrimSpace(text))
	if rangeRaw != "" {
		// An immediately repeated range collapses into one before removal.
		t = strings.ReplaceAll(t, rangeRaw+rangeRaw, rangeRaw)
		t = strings.ReplaceAll(t, rangeRaw+" "+rangeRaw, rangeRaw)
		t = strings.ReplaceAll(t, rangeRaw, " ")
	}
	t = genericRangeRe.ReplaceAllString(t, " ")
	t = lowerUpperRe.ReplaceAllString(t, "$1 $2")
	t = closingSeamRe.ReplaceAllString(t, "$1 $2")
	return spacesRe.ReplaceAllString(strings.TrimSpace(t), " ")
}

// SplitTitleDescription derives a title and a description from cleaned text
// and optional structural hints. Either result may be empty; a valid show
// can carry nothing but a time range.
func SplitTitleDescription(cleaned string, hint Hint) (title, description string) {
	title, rest := pickTitle(cleaned, hint)
	description = pickDescription(rest, title, hint)
	return title, description
}

// pickTitle prefers a structural hint that is not itself a bare time
// string, then a boundary scan over the cleaned text, then a short leading
// run of capitalized words.
func pickTitle(cleaned string, hint Hint) (title, rest string) {
	if h := strings.TrimSpace(hint.Title); h != "" && !timeOnlyRe.MatchString(h) {
		title = spacesRe.ReplaceAllString(h, " ")
		rest = strings.TrimSpace(strings.TrimPrefix(cleaned, title))
		return title, rest
	}
	return scanTitle(cleaned)
}

// scanTitle walks the cleaned text word by word, extending the candidate
// title until the first boundary signal. The literal word "Show" ends the
// title inclusively and outranks weaker signals: any other boundary is
// suppressed while "Show" sits within the next three words.
func scanTitle(cleaned string) (title, rest string) {
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "", ""
	}

	for i, w := range words {
		if w == "Show" {
			return joinSplit(words, i+1)
		}
		if i == 0 {
			continue
		}
		if showWithin(words, i, 3) {
			continue
		}
		if showEndingWords[w] {
			return joinSplit(words, i+1)
		}
		if startsLower(w) || openerAt(words, i) {
			return joinSplit(words, i)
		}
	}

	// No boundary fired: default to a short leading run of capitalized
	// words.
	n := 0
	for n < len(words) && n < 6 && !startsLower(words[n]) {
		n++
	}
	return joinSplit(words, n)
}

// joinSplit splits the word list at i into a title and the remainder.
func joinSplit(words []string, i int) (string, string) {
	return strings.Join(words[:i], " "), strings.Join(words[i:], " ")
}

// showWithin reports whether the literal word "Show" appears in the n words
// after position i.
func showWithin(words []string, i, n int) bool {
	for j := i + 1; j <= i+n && j < len(words); j++ {
		if words[j] == "Show" {
			return true
		}
	}
	return false
}

func startsLower(w string) bool {
	for _, r := range w {
		return unicode.IsLower(r)
	}
	return false
}

// openerAt reports whether a known description-opening phrase starts at
// word i.
func openerAt(words []string, i int) bool {
	tail := strings.Join(words[i:], " ")
	for _, opener := range descriptionOpeners {
		if strings.HasPrefix(tail, opener) {
			return true
		}
	}
	return false
}

// pickDescription prefers a structural hint that does not just repeat the
// title, then whatever text remained after the title boundary. A leading
// occurrence of the title inside the description, doubled or glued to the
// next capital, is stripped.
func pickDescription(rest, title string, hint Hint) string {
	desc := ""
	if h := strings.TrimSpace(hint.Description); h != "" && !timeOnlyRe.MatchString(h) {
		h = spacesRe.ReplaceAllString(h, " ")
		if h != title {
			desc = h
		}
	}
	if desc == "" {
		desc = rest
	}
	desc = stripLeadingTitle(desc, title)
	if desc == title {
		return ""
	}
	return desc
}

// stripLeadingTitle removes an exact or doubled occurrence of the title
// from the front of the description.
func stripLeadingTitle(desc, title string) string {
	if title == "" {
		return strings.TrimSpace(desc)
	}
	for strings.HasPrefix(desc, title+" "+title) {
		desc = strings.TrimSpace(strings.TrimPrefix(desc, title+" "))
	}
	if strings.HasPrefix(desc, title+" ") || desc == title {
		desc = strings.TrimSpace(strings.TrimPrefix(desc, title))
	}
	return strings.TrimSpace(desc)
}
