package market

import (
	"asset-scout/config"
	"asset-scout/models"
	"asset-scout/utils"
)

// Scraper drives the page range through fetch and extraction, deduplicating
// listing links across pages.
type Scraper struct {
	cfg       *config.Config
	logger    *utils.Logger
	fetcher   *Fetcher
	extractor *Extractor
	seen      *utils.LinkSet
}

// RangeResult summarises one scrape run over a page range.
type RangeResult struct {
	Listings    []models.Listing
	Skipped     []models.SkippedItem
	FailedPages int
	DupedLinks  int
}

// New creates a ready-to-use marketplace Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:       cfg,
		logger:    logger,
		fetcher:   NewFetcher(cfg, logger),
		extractor: NewExtractor(logger),
		seen:      utils.NewLinkSet(),
	}
}

// Scrape fetches pages start..end in sequence and extracts their listings.
// Failed pages and skipped candidates only shrink the result; they never
// abort the run.
func (s *Scraper) Scrape(start, end int) *RangeResult {
	s.logger.Info("[market] Starting scrape — pages %d..%d of %s", start, end, s.cfg.MarketBaseURL)

	result := &RangeResult{}

	for _, page := range s.fetcher.FetchRange(start, end) {
		if !page.OK {
			result.FailedPages++
			continue
		}

		listings, skipped := s.extractor.Extract(page.Markup)
		result.Skipped = append(result.Skipped, skipped...)

		accepted := 0
		for _, l := range listings {
			if !s.seen.Add(l.Link) {
				s.logger.Debug("[market] Duplicate link skipped: %s", l.Link)
				result.DupedLinks++
				continue
			}
			result.Listings = append(result.Listings, l)
			accepted++
		}

		s.logger.Info("[market] %s — %d listings accepted, %d skipped", page.URL, accepted, len(skipped))
	}

	s.logger.Info("[market] Scrape complete — %d listings, %d skipped, %d duplicate links, %d failed pages",
		len(result.Listings), len(result.Skipped), result.DupedLinks, result.FailedPages)
	return result
}
