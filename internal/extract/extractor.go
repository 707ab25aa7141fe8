package extract

import (
	"log/slog"

	"github.com/khrees2412/jobcards/internal/dom"
	"github.com/khrees2412/jobcards/pkg/models"
)

// Extractor runs the selector chains against a page.
type Extractor struct {
	chains Chains
	logger *slog.Logger
}

// New returns an Extractor using chains. A nil logger logs to slog.Default().
func New(chains Chains, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{chains: chains, logger: logger}
}

// Result is the outcome of one extraction pass.
type Result struct {
	Records      []models.JobRecord
	CardStrategy dom.Strategy
	CardsFound   int
	CardsFailed  int
	Untitled     int
	PageLength   int // only measured when no records were found
}

// pageSizer is implemented by backends that know the size of the page
// source. It is only consulted when a page yields no records.
type pageSizer interface {
	PageLength() int
}

// Discover returns the job cards on page and the strategy that found them.
// A page without cards yields an empty slice.
func (e *Extractor) Discover(q dom.Querier, page dom.Element) ([]dom.Element, dom.Strategy) {
	cards, s, ok := ResolveAll(q, page, e.chains.Cards)
	if !ok {
		return nil, dom.Strategy{}
	}
	e.logger.Info("found job cards", "count", len(cards), "selector", s.String())
	return cards, s
}

// Record builds the JobRecord for one card. Fields are extracted in the
// order title, company, location, date.
func (e *Extractor) Record(q dom.Querier, card dom.Element) models.JobRecord {
	return models.JobRecord{
		Title:      e.Title(q, card),
		Company:    e.Company(q, card),
		Location:   e.Location(q, card),
		DatePosted: e.Date(q, card),
	}
}

// All returns the records of every titled card on page in document order.
func (e *Extractor) All(q dom.Querier, page dom.Element) []models.JobRecord {
	return e.Run(q, page).Records
}

// Run extracts every card on page. A card that faults is logged and
// skipped; cards without a title are dropped. Run never fails.
func (e *Extractor) Run(q dom.Querier, page dom.Element) Result {
	var res Result
	cards, ok := e.discoverSafely(q, page, &res)
	if ok {
		res.CardsFound = len(cards)
		for i, card := range cards {
			record, ok := e.recordSafely(q, card, i)
			if !ok {
				res.CardsFailed++
				continue
			}
			if record.Title == "" {
				res.Untitled++
				continue
			}
			res.Records = append(res.Records, record)
		}
	}

	if len(res.Records) == 0 {
		if sizer, ok := q.(pageSizer); ok {
			res.PageLength = sizer.PageLength()
		}
		e.logger.Warn("no job details found", "cards", res.CardsFound, "page_length", res.PageLength)
	} else {
		e.logger.Info("extracted job listings",
			"records", len(res.Records),
			"failed", res.CardsFailed,
			"untitled", res.Untitled)
	}
	return res
}

func (e *Extractor) discoverSafely(q dom.Querier, page dom.Element, res *Result) (cards []dom.Element, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("card discovery failed", "panic", r)
			cards, ok = nil, false
		}
	}()
	cards, res.CardStrategy = e.Discover(q, page)
	return cards, true
}

func (e *Extractor) recordSafely(q dom.Querier, card dom.Element, index int) (record models.JobRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("error extracting from individual card", "card", index, "panic", r)
			record, ok = models.JobRecord{}, false
		}
	}()
	return e.Record(q, card), true
}

// DiscoverCards finds the job cards on page with the default chains.
func DiscoverCards(q dom.Querier, page dom.Element) []dom.Element {
	cards, _ := New(DefaultChains(), nil).Discover(q, page)
	return cards
}

// ExtractRecord builds one record with the default chains.
func ExtractRecord(q dom.Querier, card dom.Element) models.JobRecord {
	return New(DefaultChains(), nil).Record(q, card)
}

// ExtractAll extracts every titled card on page with the default chains.
func ExtractAll(q dom.Querier, page dom.Element) []models.JobRecord {
	return New(DefaultChains(), nil).All(q, page)
}
