package extract

import "github.com/khrees2412/jobcards/internal/dom"

// Chains holds the selector chain for card discovery and for each field.
// Adding a markup variant means adding a strategy here.
type Chains struct {
	Cards    dom.Chain
	Title    dom.Chain
	Company  dom.Chain
	Location dom.Chain
	Date     dom.Chain
}

// DefaultChains returns the LinkedIn search-results chains, most specific
// first.
func DefaultChains() Chains {
	return Chains{
		Cards: dom.Chain{
			dom.CSS(".job-card-container"),
			dom.CSS(".jobs-search-results__list-item"),
			dom.CSS(".job-card-list"),
			dom.Attr("data-testid", "job-card"),
			dom.CSS(".jobs-search-results-list__item"),
		},
		Title: dom.CSSChain(
			".job-card-list__title",
			"h3 a",
			".job-card-container__link",
			"h3.job-card-list__title",
			"[data-testid='job-title']",
			".job-card-list__title-link",
			"h3",
			"a[data-control-name='job_search_job_title']",
		),
		Company: dom.CSSChain(
			".job-card-container__primary-description",
			".job-card-list__company-name",
			"h4 a",
			".job-card-container__company-name",
			"[data-testid='job-company']",
			"h4",
			"a[data-control-name='job_search_company_name']",
			".artdeco-entity-lockup__subtitle",
		),
		Location: dom.CSSChain(
			".job-card-container__metadata-item",
			".job-card-list__location",
			"[data-testid='job-location']",
			".artdeco-entity-lockup__caption",
			".job-card-container__metadata-wrapper span",
		),
		Date: dom.CSSChain(
			".job-card-list__footer-wrapper time",
			"time",
			".job-card-container__footer-item time",
			"[data-testid='job-date']",
			".job-card-list__footer time",
		),
	}
}
