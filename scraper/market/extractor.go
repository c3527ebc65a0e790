package market

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"asset-scout/models"
	"asset-scout/utils"
)

// priceRegexp captures the numeric part of a price string, ignoring the
// currency symbol and any surrounding text.
var priceRegexp = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

const titlePlaceholder = "N/A"

// Extractor parses one page's markup into zero or more validated listings.
type Extractor struct {
	logger *utils.Logger
}

// NewExtractor creates an Extractor with the given logger.
func NewExtractor(logger *utils.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract locates all candidate listing blocks in the markup and returns
// the ones that validate, plus a record per skipped candidate. A page with
// zero valid candidates yields an empty slice, not an error, and a bad
// candidate never aborts the rest of the page.
func (e *Extractor) Extract(markup string) ([]models.Listing, []models.SkippedItem) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		e.logger.Warn("[extract] Unparseable markup: %v", err)
		return nil, nil
	}

	var listings []models.Listing
	var skipped []models.SkippedItem

	doc.Find("div.item-class").Each(func(_ int, block *goquery.Selection) {
		title := strings.TrimSpace(block.Find("h2").First().Text())
		priceText := strings.TrimSpace(block.Find("span.price-class").First().Text())
		link, _ := block.Find("a").First().Attr("href")

		reason := ""
		price := parsePrice(priceText)

		switch {
		case title == "" || title == titlePlaceholder:
			reason = "missing title"
		case priceText == "":
			reason = "missing price"
		case price <= 0:
			reason = "invalid price " + strconv.Quote(priceText)
		case link == "":
			reason = "missing link"
		}

		if reason != "" {
			e.logger.Warn("[extract] Skipping candidate (%s)", reason)
			skipped = append(skipped, models.SkippedItem{Reason: reason})
			return
		}

		listings = append(listings, models.Listing{
			Title: title,
			Price: price,
			Link:  link,
		})
	})

	return listings, skipped
}

// parsePrice converts a display price like "$1,234.50" to 1234.50.
// Returns 0 when no numeric value can be found.
func parsePrice(raw string) float64 {
	match := priceRegexp.FindString(raw)
	if match == "" {
		return 0
	}

	clean := strings.ReplaceAll(match, ",", "")
	price, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return price
}
