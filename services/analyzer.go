package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"asset-scout/models"
	"asset-scout/utils"
)

// Analyzer flags stored assets whose price sits in the lower tail of the
// observed price distribution.
type Analyzer struct {
	logger *utils.Logger
}

// NewAnalyzer creates an Analyzer with the given logger.
func NewAnalyzer(logger *utils.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// FindUndervalued computes the price threshold at the given percentile of
// the snapshot's price distribution and returns every asset priced strictly
// below it, annotated with its discount versus the snapshot mean and sorted
// by discount descending (ties keep input order). Results are recomputed
// from scratch on every call. If the mean price is zero (all prices zero),
// discounts are reported as 0% rather than dividing by zero.
func (a *Analyzer) FindUndervalued(assets []models.StoredAsset, percentile float64) []models.UndervaluedAsset {
	if len(assets) == 0 {
		return nil
	}

	prices := make([]float64, len(assets))
	var total float64
	for i, asset := range assets {
		prices[i] = asset.Price
		total += asset.Price
	}
	mean := total / float64(len(assets))
	threshold := percentileValue(prices, percentile)

	var undervalued []models.UndervaluedAsset
	for _, asset := range assets {
		if asset.Price >= threshold {
			continue
		}

		discount := 0.0
		if mean != 0 {
			discount = (mean - asset.Price) / mean * 100
		}
		undervalued = append(undervalued, models.UndervaluedAsset{
			StoredAsset:     asset,
			DiscountPercent: discount,
		})
	}

	sort.SliceStable(undervalued, func(i, j int) bool {
		return undervalued[i].DiscountPercent > undervalued[j].DiscountPercent
	})

	a.logger.Info("[analyzer] %d of %d assets below the %.0fth percentile (threshold %.2f, mean %.2f)",
		len(undervalued), len(assets), percentile, threshold, mean)
	return undervalued
}

// percentileValue returns the linearly interpolated percentile of values,
// the value v such that p%% of the sorted values are <= v.
func percentileValue(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// PrintReport renders the ranked undervalued subset to stdout.
func (a *Analyzer) PrintReport(assets []models.UndervaluedAsset) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  UNDERVALUED ASSETS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	if len(assets) == 0 {
		fmt.Printf("  No undervalued assets found\n\n")
		return
	}

	for i, asset := range assets {
		fmt.Printf("  \033[1m%d.\033[0m %-38s \033[1;32m$%.2f\033[0m  \033[1;31m-%.1f%%\033[0m\n",
			i+1, truncate(asset.Title, 36), asset.Price, asset.DiscountPercent)
		fmt.Printf("     %s\n", asset.Link)
	}

	fmt.Printf("\n  %s\n", thin)
	fmt.Printf("  %d assets flagged\n\n", len(assets))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
