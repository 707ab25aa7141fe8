// Package dom defines the query capability the extraction engine runs
// against, along with the selector strategies it understands.
package dom

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by FindOne when no element matches.
	ErrNotFound = errors.New("element not found")
	// ErrUnsupported is returned when a backend cannot evaluate a strategy
	// in the given scope.
	ErrUnsupported = errors.New("strategy not supported")
)

// Kind tags the lookup a Strategy performs.
type Kind int

const (
	ByID Kind = iota
	ByName
	ByCSS
	ByXPath
	ByAttr
)

func (k Kind) String() string {
	switch k {
	case ByID:
		return "id"
	case ByName:
		return "name"
	case ByCSS:
		return "css"
	case ByXPath:
		return "xpath"
	case ByAttr:
		return "attr"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Strategy is one way of locating an element. For ByAttr, Locator is the
// attribute name and Value the expected value; an empty Value matches any
// element carrying the attribute.
type Strategy struct {
	Kind    Kind
	Locator string
	Value   string
}

func ID(id string) Strategy { return Strategy{Kind: ByID, Locator: id} }

func Name(name string) Strategy { return Strategy{Kind: ByName, Locator: name} }

func CSS(selector string) Strategy { return Strategy{Kind: ByCSS, Locator: selector} }

func XPath(expr string) Strategy { return Strategy{Kind: ByXPath, Locator: expr} }

func Attr(name, value string) Strategy {
	return Strategy{Kind: ByAttr, Locator: name, Value: value}
}

func (s Strategy) String() string {
	if s.Kind == ByAttr && s.Value != "" {
		return fmt.Sprintf("%s:%s=%s", s.Kind, s.Locator, s.Value)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Locator)
}

// Selector returns the CSS selector equivalent of s. XPath strategies have
// no CSS form and report ErrUnsupported.
func (s Strategy) Selector() (string, error) {
	switch s.Kind {
	case ByCSS:
		return s.Locator, nil
	case ByID:
		return attrSelector("id", s.Locator), nil
	case ByName:
		return attrSelector("name", s.Locator), nil
	case ByAttr:
		if s.Value == "" {
			return "[" + s.Locator + "]", nil
		}
		return attrSelector(s.Locator, s.Value), nil
	default:
		return "", fmt.Errorf("%w: %s has no css form", ErrUnsupported, s)
	}
}

func attrSelector(name, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return fmt.Sprintf(`[%s="%s"]`, name, value)
}

// Chain is an ordered list of strategies, tried left to right.
type Chain []Strategy

// CSSChain builds a chain of CSS strategies.
func CSSChain(selectors ...string) Chain {
	chain := make(Chain, 0, len(selectors))
	for _, sel := range selectors {
		chain = append(chain, CSS(sel))
	}
	return chain
}

// Element is an opaque handle to a node owned by a Querier. A nil Element
// used as a scope means the whole document.
type Element any

// Querier is the DOM query capability. Implementations are read-only with
// respect to the document.
type Querier interface {
	// FindOne returns the first element under scope matching s, or
	// ErrNotFound.
	FindOne(scope Element, s Strategy) (Element, error)
	// FindAll returns every element under scope matching s in document
	// order. No match is an empty slice, not an error.
	FindAll(scope Element, s Strategy) ([]Element, error)
	// Text returns the rendered text of el, lines separated by "\n".
	Text(el Element) (string, error)
	// Attr returns the value of the named attribute and whether it exists.
	Attr(el Element, name string) (string, bool, error)
}
