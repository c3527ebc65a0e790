package main

import (
	"os"

	"asset-scout/config"
	"asset-scout/scraper/market"
	"asset-scout/services"
	"asset-scout/storage"
	"asset-scout/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Asset Scout starting ===")
	logger.Info("Config — pages: %d..%d | percentile: %.0f | page delay: %dms",
		cfg.StartPage, cfg.EndPage, cfg.ThresholdPercentile, cfg.PageDelayMs)

	store, err := storage.NewPostgresStore(cfg.DSN(), logger)
	if err != nil {
		logger.Error("Failed to initialize store: %v", err)
		logger.Error("Make sure Docker is running: docker compose up -d")
		os.Exit(1)
	}
	defer store.Close()

	scraper := market.New(cfg, logger)
	result := scraper.Scrape(cfg.StartPage, cfg.EndPage)

	if len(result.Listings) == 0 {
		logger.Warn("No listings were scraped — nothing to persist")
	} else if err := store.InsertBatch(result.Listings); err != nil {
		logger.Error("Failed to store %d listings — batch rolled back: %v", len(result.Listings), err)
	} else {
		logger.Info("Stored %d listings (table: assets)", len(result.Listings))
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		logger.Error("Failed to read snapshot: %v", err)
		os.Exit(1)
	}

	analyzer := services.NewAnalyzer(logger)
	undervalued := analyzer.FindUndervalued(snapshot, cfg.ThresholdPercentile)
	analyzer.PrintReport(undervalued)

	if cfg.ReportCSVPath != "" {
		if err := storage.ExportUndervaluedCSV(cfg.ReportCSVPath, undervalued); err != nil {
			logger.Error("CSV export failed: %v", err)
		} else {
			logger.Info("Report exported to %s", cfg.ReportCSVPath)
		}
	}
}
