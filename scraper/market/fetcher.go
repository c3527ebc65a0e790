package market

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"asset-scout/config"
	"asset-scout/utils"
)

// PageResult is the outcome of fetching one page. A failed fetch carries
// empty markup and OK=false; it never aborts the surrounding range.
type PageResult struct {
	URL    string
	Markup string
	OK     bool
}

// Fetcher retrieves raw marketplace markup over HTTP with a fixed client
// identity and timeout.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	pageDelay time.Duration
	logger    *utils.Logger
}

// NewFetcher creates a Fetcher from application config.
func NewFetcher(cfg *config.Config, logger *utils.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second,
		},
		baseURL:   cfg.MarketBaseURL,
		userAgent: cfg.UserAgent,
		pageDelay: time.Duration(cfg.PageDelayMs) * time.Millisecond,
		logger:    logger,
	}
}

// FetchPage issues a GET for one page and returns its markup. Network
// errors and non-2xx statuses are logged and reported as OK=false so a
// single bad page cannot abort a multi-page run.
func (f *Fetcher) FetchPage(url string) (string, bool) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		f.logger.Error("[fetch] Invalid URL %s: %v", url, err)
		return "", false
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("[fetch] Failed to fetch %s: %v", url, err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("[fetch] Failed to fetch %s: status %d", url, resp.StatusCode)
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("[fetch] Failed to read body of %s: %v", url, err)
		return "", false
	}

	return string(body), true
}

// FetchRange fetches pages start..end inclusive in increasing order,
// pausing between successive requests as a rate-limit courtesy.
func (f *Fetcher) FetchRange(start, end int) []PageResult {
	var results []PageResult

	for page := start; page <= end; page++ {
		url := fmt.Sprintf("%s/page/%d", f.baseURL, page)
		markup, ok := f.FetchPage(url)
		results = append(results, PageResult{URL: url, Markup: markup, OK: ok})

		if page < end && f.pageDelay > 0 {
			time.Sleep(f.pageDelay)
		}
	}

	return results
}
