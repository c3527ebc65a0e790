package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"asset-scout/config"
	"asset-scout/models"
	"asset-scout/utils"
)

// AuctionClient posts user-selected assets to the external auction API.
// Outcomes are boolean per item; the pipeline never depends on them.
type AuctionClient struct {
	apiURL string
	client *http.Client
	logger *utils.Logger
	pool   *utils.WorkerPool
	retry  *utils.RetryConfig
}

type auctionPayload struct {
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Link      string  `json:"link"`
	Timestamp string  `json:"timestamp"`
}

// NewAuctionClient creates an AuctionClient from application config.
func NewAuctionClient(cfg *config.Config, logger *utils.Logger) *AuctionClient {
	return &AuctionClient{
		apiURL: cfg.AuctionAPIURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second,
		},
		logger: logger,
		pool:   utils.NewWorkerPool(cfg.MaxConcurrency, cfg.PageDelayMs),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

// PostItem posts a single item to the auction site. Failures are logged
// and reported as false, never raised.
func (c *AuctionClient) PostItem(item models.AuctionItem) bool {
	payload := auctionPayload{
		Title:     item.Title,
		Price:     item.Price,
		Link:      item.Link,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("[auction] Failed to encode %q: %v", item.Title, err)
		return false
	}

	err = c.retry.Do("post-auction", func() error {
		req, err := http.NewRequest(http.MethodPost, c.apiURL+"/create-auction", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		c.logger.Error("[auction] Failed to post %q: %v", item.Title, err)
		return false
	}

	c.logger.Info("[auction] Posted auction for %q", item.Title)
	return true
}

// PostAll posts the selected items through the worker pool and returns how
// many succeeded.
func (c *AuctionClient) PostAll(items []models.AuctionItem) int {
	var posted int64

	for _, item := range items {
		it := item
		c.pool.Submit(func() {
			if c.PostItem(it) {
				atomic.AddInt64(&posted, 1)
			}
		})
	}
	c.pool.Wait()

	c.logger.Info("[auction] Posted %d of %d selected items", posted, len(items))
	return int(posted)
}
