// Package extract turns job cards on a results page into JobRecords. Every
// field is found through an ordered selector chain where the first strategy
// producing a usable value wins and lookup failures only move on to the
// next strategy.
package extract

import (
	"strings"

	"github.com/khrees2412/jobcards/internal/dom"
)

// Reader pulls a value out of a matched element. ok is false when the
// element has nothing usable.
type Reader func(q dom.Querier, el dom.Element) (value string, ok bool)

// TrimmedText reads the element's text with surrounding whitespace removed.
func TrimmedText(q dom.Querier, el dom.Element) (string, bool) {
	text, err := q.Text(el)
	if err != nil {
		return "", false
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}

// AttrOrText returns the named attribute as written and falls back to the
// trimmed element text when the attribute is absent or empty.
func AttrOrText(name string) Reader {
	return func(q dom.Querier, el dom.Element) (string, bool) {
		if value, ok, err := q.Attr(el, name); err == nil && ok && value != "" {
			return value, true
		}
		return TrimmedText(q, el)
	}
}

// Resolve returns the value of the first strategy in chain whose first
// match under scope reads as present.
func Resolve(q dom.Querier, scope dom.Element, chain dom.Chain, read Reader) (string, bool) {
	for _, s := range chain {
		el, err := q.FindOne(scope, s)
		if err != nil || el == nil {
			continue
		}
		if value, ok := read(q, el); ok {
			return value, true
		}
	}
	return "", false
}

// ResolveMatch walks every match of each strategy in document order and
// returns the first value accept agrees with. A match that reads as blank
// ends its strategy's scan and the chain moves on to the next strategy.
func ResolveMatch(q dom.Querier, scope dom.Element, chain dom.Chain, read Reader, accept func(string) bool) (string, bool) {
	for _, s := range chain {
		all, err := q.FindAll(scope, s)
		if err != nil {
			continue
		}
		for _, el := range all {
			value, ok := read(q, el)
			if !ok {
				break
			}
			if accept(value) {
				return value, true
			}
		}
	}
	return "", false
}

// ResolveAll returns the first non-empty collection in chain and the
// strategy that matched it. Later strategies are never evaluated.
func ResolveAll(q dom.Querier, scope dom.Element, chain dom.Chain) ([]dom.Element, dom.Strategy, bool) {
	for _, s := range chain {
		all, err := q.FindAll(scope, s)
		if err != nil || len(all) == 0 {
			continue
		}
		return all, s, true
	}
	return nil, dom.Strategy{}, false
}
