package extract

import (
	"strings"

	"github.com/khrees2412/jobcards/internal/dom"
)

var (
	locationKeywords = []string{"remote", "hybrid", "on-site", "city", "state", "country"}
	dateKeywords     = []string{"ago", "day", "week", "month", "hour", "minute"}
)

// dateAttr holds the machine-readable timestamp on <time> elements.
const dateAttr = "datetime"

// Title returns the card's job title or "".
func (e *Extractor) Title(q dom.Querier, card dom.Element) string {
	title, _ := Resolve(q, card, e.chains.Title, TrimmedText)
	return title
}

// Company returns the hiring company or "".
func (e *Extractor) Company(q dom.Querier, card dom.Element) string {
	company, _ := Resolve(q, card, e.chains.Company, TrimmedText)
	return company
}

// Location returns the first location-shaped text across the location
// chain. The chain widens from dedicated location fields to generic
// metadata spans, so each candidate is classified by LooksLikeLocation.
func (e *Extractor) Location(q dom.Querier, card dom.Element) string {
	location, _ := ResolveMatch(q, card, e.chains.Location, TrimmedText, LooksLikeLocation)
	return location
}

// Date returns the posting date. Structured date elements are tried first;
// otherwise the first line of card text with relative-date wording is used.
func (e *Extractor) Date(q dom.Querier, card dom.Element) string {
	if date, ok := Resolve(q, card, e.chains.Date, AttrOrText(dateAttr)); ok {
		return date
	}
	text, err := q.Text(card)
	if err != nil {
		return ""
	}
	return relativeDateLine(text)
}

// LooksLikeLocation reports whether text is shaped like a job location.
func LooksLikeLocation(text string) bool {
	if text == "" {
		return false
	}
	return hasLocationKeyword(text) || hasComma(text) || isShort(text)
}

func hasLocationKeyword(text string) bool {
	return containsAny(strings.ToLower(text), locationKeywords)
}

func hasComma(text string) bool {
	return strings.Contains(text, ",")
}

// isShort matches texts of at most four words; locations rarely run longer.
func isShort(text string) bool {
	return len(strings.Fields(text)) <= 4
}

func relativeDateLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if containsAny(strings.ToLower(line), dateKeywords) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
