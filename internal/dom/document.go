package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Document is a Querier over a parsed HTML snapshot. Elements it hands out
// are *html.Node values.
type Document struct {
	doc    *goquery.Document
	length int
}

// Parse reads an HTML page into a Document.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{doc: doc, length: len(raw)}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// PageLength is the size in bytes of the source the Document was parsed from.
func (d *Document) PageLength() int {
	return d.length
}

func (d *Document) FindOne(scope Element, s Strategy) (Element, error) {
	all, err := d.FindAll(scope, s)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	return all[0], nil
}

func (d *Document) FindAll(scope Element, s Strategy) ([]Element, error) {
	root, err := d.node(scope)
	if err != nil {
		return nil, err
	}

	var nodes []*html.Node
	if s.Kind == ByXPath {
		found, err := htmlquery.QueryAll(root, s.Locator)
		if err != nil {
			return nil, fmt.Errorf("invalid xpath %q: %w", s.Locator, err)
		}
		for _, n := range found {
			if n.Type == html.ElementNode {
				nodes = append(nodes, n)
			}
		}
	} else {
		css, err := s.Selector()
		if err != nil {
			return nil, err
		}
		m, err := cascadia.Compile(css)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", css, err)
		}
		nodes = d.selection(root).FindMatcher(m).Nodes
	}

	elements := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, n)
	}
	return elements, nil
}

func (d *Document) Text(el Element) (string, error) {
	n, err := d.node(el)
	if err != nil {
		return "", err
	}
	return renderText(n), nil
}

func (d *Document) Attr(el Element, name string) (string, bool, error) {
	n, err := d.node(el)
	if err != nil {
		return "", false, err
	}
	value, ok := d.selection(n).Attr(name)
	return value, ok, nil
}

func (d *Document) node(el Element) (*html.Node, error) {
	if el == nil {
		return d.doc.Nodes[0], nil
	}
	n, ok := el.(*html.Node)
	if !ok {
		return nil, fmt.Errorf("%w: element of type %T", ErrUnsupported, el)
	}
	if n == nil {
		return d.doc.Nodes[0], nil
	}
	return n, nil
}

func (d *Document) selection(n *html.Node) *goquery.Selection {
	if n == d.doc.Nodes[0] {
		return d.doc.Selection
	}
	return d.doc.FindNodes(n)
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true,
}

var skippedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "head": true,
}

// renderText approximates a browser's innerText: whitespace collapses
// inside a line, block elements and <br> start new lines, empty lines are
// dropped.
func renderText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(strings.Map(flattenSpace, n.Data))
			return
		case html.ElementNode:
			if skippedTags[n.Data] {
				return
			}
			if n.Data == "br" {
				b.WriteByte('\n')
				return
			}
		}
		block := n.Type == html.ElementNode && blockTags[n.Data]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	walk(n)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// flattenSpace keeps source line breaks inside a text node from splitting
// the rendered line.
func flattenSpace(r rune) rune {
	switch r {
	case '\n', '\r', '\t', '\f':
		return ' '
	}
	return r
}
