package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/khrees2412/jobcards/internal/app"
	"github.com/khrees2412/jobcards/internal/dom"
	"github.com/khrees2412/jobcards/internal/extract"
)

const (
	loginURL  = "https://www.linkedin.com/login"
	searchURL = "https://www.linkedin.com/jobs/search/"
)

// Login form variants, most common first.
var (
	emailChain = dom.Chain{
		dom.ID("session_key"),
		dom.ID("username"),
		dom.ID("login-email"),
		dom.ID("email"),
		dom.Name("session_key"),
		dom.CSS(`input[type="email"]`),
	}
	passwordChain = dom.Chain{
		dom.ID("session_password"),
		dom.ID("password"),
		dom.ID("login-password"),
		dom.Name("session_password"),
		dom.CSS(`input[type="password"]`),
	}
	submitChain = dom.Chain{
		dom.XPath("//button[@type='submit']"),
		dom.XPath("//input[@type='submit']"),
		dom.XPath("//button[contains(text(), 'Sign in')]"),
		dom.XPath("//button[contains(text(), 'Log in')]"),
		dom.CSS(".btn-primary"),
	}
)

// Waits tunes how long the session pauses for the site to settle.
type Waits struct {
	LoginPage   time.Duration
	AfterLogin  time.Duration
	SearchPage  time.Duration
	AfterScroll time.Duration
}

// DefaultWaits are the pauses used against the live site.
var DefaultWaits = Waits{
	LoginPage:   3 * time.Second,
	AfterLogin:  5 * time.Second,
	SearchPage:  8 * time.Second,
	AfterScroll: 2 * time.Second,
}

// Session drives the login and search pages of one browser context.
type Session struct {
	ctx    context.Context
	page   *Page
	waits  Waits
	logger *slog.Logger
}

func NewSession(ctx context.Context, waits Waits, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{ctx: ctx, page: NewPage(ctx), waits: waits, logger: logger}
}

// Page returns the live page the session is driving.
func (s *Session) Page() *Page {
	return s.page
}

// Login signs in with email and password. Form fields are located with
// selector chains since the login markup varies between experiments.
func (s *Session) Login(email, password string) error {
	if email == "" || password == "" {
		return app.ErrMissingCredentials
	}

	s.logger.Info("navigating to login", "url", loginURL)
	if err := chromedp.Run(s.ctx, chromedp.Navigate(loginURL), chromedp.Sleep(s.waits.LoginPage)); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}
	s.logInputs()

	emailField, err := s.locate("email field", emailChain)
	if err != nil {
		return err
	}
	passwordField, err := s.locate("password field", passwordChain)
	if err != nil {
		return err
	}
	submit, err := s.locate("submit button", submitChain)
	if err != nil {
		return err
	}

	err = chromedp.Run(s.ctx,
		chromedp.Clear(byID(emailField), chromedp.ByNodeID),
		chromedp.SendKeys(byID(emailField), email, chromedp.ByNodeID),
		chromedp.Clear(byID(passwordField), chromedp.ByNodeID),
		chromedp.SendKeys(byID(passwordField), password, chromedp.ByNodeID),
		chromedp.Click(byID(submit), chromedp.ByNodeID),
		chromedp.Sleep(s.waits.AfterLogin),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrLoginFailed, err)
	}

	var currentURL, title string
	if err := chromedp.Run(s.ctx, chromedp.Location(&currentURL), chromedp.Title(&title)); err != nil {
		return fmt.Errorf("failed to read page after login: %w", err)
	}
	if strings.Contains(currentURL, "/login") || strings.Contains(currentURL, "/checkpoint") {
		s.logger.Error("login did not complete", "url", currentURL, "title", title)
		return fmt.Errorf("%w: still on %s, check credentials or verify the account", app.ErrLoginFailed, currentURL)
	}
	s.logger.Info("login completed", "url", currentURL)
	return nil
}

// Search opens the results page for term and scrolls passes times so the
// list lazy-loads more cards.
func (s *Session) Search(term string, passes int) error {
	url := SearchURL(term)
	s.logger.Info("navigating to job search", "term", term, "url", url)
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url), chromedp.Sleep(s.waits.SearchPage)); err != nil {
		return fmt.Errorf("failed to load job search: %w", err)
	}

	var currentURL, title string
	if err := chromedp.Run(s.ctx, chromedp.Location(&currentURL), chromedp.Title(&title)); err == nil {
		s.logger.Info("search page loaded", "url", currentURL, "title", title)
	}

	for i := 0; i < passes; i++ {
		err := chromedp.Run(s.ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(s.waits.AfterScroll),
		)
		if err != nil {
			return fmt.Errorf("scroll %d: %w", i+1, err)
		}
	}
	return nil
}

// SearchURL builds the LinkedIn job search URL for term.
func SearchURL(term string) string {
	return searchURL + "?keywords=" + strings.ReplaceAll(term, " ", "%20")
}

func (s *Session) locate(what string, chain dom.Chain) (*cdp.Node, error) {
	found, strategy, ok := extract.ResolveAll(s.page, nil, chain)
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", app.ErrLoginFailed, what)
	}
	s.logger.Debug("found "+what, "selector", strategy.String())
	return found[0].(*cdp.Node), nil
}

// logInputs dumps the login page's inputs for diagnosing form changes.
func (s *Session) logInputs() {
	if !s.logger.Enabled(s.ctx, slog.LevelDebug) {
		return
	}
	inputs, err := s.page.FindAll(nil, dom.CSS("input"))
	if err != nil {
		return
	}
	s.logger.Debug("login page inputs", "count", len(inputs))
	for i, el := range inputs {
		id, _, _ := s.page.Attr(el, "id")
		name, _, _ := s.page.Attr(el, "name")
		kind, _, _ := s.page.Attr(el, "type")
		s.logger.Debug("input", "index", i, "id", id, "name", name, "type", kind)
	}
}

func byID(n *cdp.Node) []cdp.NodeID {
	return []cdp.NodeID{n.NodeID}
}
