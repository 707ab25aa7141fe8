package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/cdproto/cdp"
	cdpdom "github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/khrees2412/jobcards/internal/dom"
)

// innerTextJS matches what a user sees, with block elements on their own
// lines.
const innerTextJS = `function() { return this.innerText || this.textContent || ""; }`

// Page is a dom.Querier over the live page of a chromedp context. Elements
// are *cdp.Node values; a nil scope is the whole document.
type Page struct {
	ctx context.Context
}

// NewPage wraps a chromedp context. Every query blocks on the browser and
// is bounded by ctx.
func NewPage(ctx context.Context) *Page {
	return &Page{ctx: ctx}
}

func (p *Page) FindOne(scope dom.Element, s dom.Strategy) (dom.Element, error) {
	all, err := p.FindAll(scope, s)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, s)
	}
	return all[0], nil
}

func (p *Page) FindAll(scope dom.Element, s dom.Strategy) ([]dom.Element, error) {
	from, err := node(scope)
	if err != nil {
		return nil, err
	}
	sel, opts, err := query(s, from)
	if err != nil {
		return nil, err
	}

	var nodes []*cdp.Node
	if err := chromedp.Run(p.ctx, chromedp.Nodes(sel, &nodes, opts...)); err != nil {
		return nil, fmt.Errorf("query %s: %w", s, err)
	}

	elements := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		if n.NodeType == cdp.NodeTypeElement {
			elements = append(elements, n)
		}
	}
	return elements, nil
}

func (p *Page) Text(el dom.Element) (string, error) {
	n, err := node(el)
	if err != nil {
		return "", err
	}
	if n == nil {
		var text string
		err := chromedp.Run(p.ctx, chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &text))
		return text, err
	}

	var text string
	err = chromedp.Run(p.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := cdpdom.ResolveNode().WithNodeID(n.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		res, exc, err := runtime.CallFunctionOn(innerTextJS).
			WithObjectID(obj.ObjectID).
			WithReturnByValue(true).
			Do(ctx)
		if err != nil {
			return err
		}
		if exc != nil {
			return exc
		}
		return json.Unmarshal(res.Value, &text)
	}))
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return text, nil
}

func (p *Page) Attr(el dom.Element, name string) (string, bool, error) {
	n, err := node(el)
	if err != nil {
		return "", false, err
	}
	if n == nil {
		return "", false, nil
	}
	value, ok := n.Attribute(name)
	return value, ok, nil
}

// Snapshot returns the current outer HTML of the document.
func (p *Page) Snapshot() (string, error) {
	var html string
	if err := chromedp.Run(p.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read page source: %w", err)
	}
	return html, nil
}

// PageLength is the length of the current page source, 0 when unreadable.
func (p *Page) PageLength() int {
	html, err := p.Snapshot()
	if err != nil {
		return 0
	}
	return len(html)
}

// query translates a strategy into a chromedp selector. XPath runs through
// DOM.performSearch, which only searches the whole document.
func query(s dom.Strategy, from *cdp.Node) (string, []chromedp.QueryOption, error) {
	opts := []chromedp.QueryOption{chromedp.AtLeast(0)}
	if s.Kind == dom.ByXPath {
		if from != nil {
			return "", nil, fmt.Errorf("%w: xpath inside an element", dom.ErrUnsupported)
		}
		return s.Locator, append(opts, chromedp.BySearch), nil
	}

	sel, err := s.Selector()
	if err != nil {
		return "", nil, err
	}
	opts = append(opts, chromedp.ByQueryAll)
	if from != nil {
		opts = append(opts, chromedp.FromNode(from))
	}
	return sel, opts, nil
}

func node(el dom.Element) (*cdp.Node, error) {
	if el == nil {
		return nil, nil
	}
	n, ok := el.(*cdp.Node)
	if !ok {
		return nil, fmt.Errorf("%w: element of type %T", dom.ErrUnsupported, el)
	}
	return n, nil
}
