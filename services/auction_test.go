package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"asset-scout/config"
	"asset-scout/models"
	"asset-scout/utils"
)

func auctionTestConfig(apiURL string) *config.Config {
	return &config.Config{
		AuctionAPIURL:   apiURL,
		HTTPTimeoutSecs: 5,
		MaxConcurrency:  2,
		MaxRetries:      1,
	}
}

func TestPostItemSendsPayload(t *testing.T) {
	var got auctionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/create-auction" {
			t.Errorf("path: got %q, want /create-auction", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type: got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewAuctionClient(auctionTestConfig(srv.URL), utils.NewSilentLogger())

	ok := c.PostItem(models.AuctionItem{Title: "Vintage Camera", Price: 120.50, Link: "/item/1"})
	if !ok {
		t.Fatal("expected successful post")
	}
	if got.Title != "Vintage Camera" || got.Price != 120.50 || got.Link != "/item/1" {
		t.Errorf("payload: got %+v", got)
	}
	if got.Timestamp == "" {
		t.Error("payload should carry a generated timestamp")
	}
}

func TestPostItemFailureIsBoolean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewAuctionClient(auctionTestConfig(srv.URL), utils.NewSilentLogger())

	if c.PostItem(models.AuctionItem{Title: "X", Price: 1, Link: "/x"}) {
		t.Error("failed post should report false")
	}
}

func TestPostAllCountsSuccesses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p auctionPayload
		json.NewDecoder(r.Body).Decode(&p)
		if p.Title == "Cursed Mirror" {
			http.Error(w, "rejected", http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewAuctionClient(auctionTestConfig(srv.URL), utils.NewSilentLogger())

	items := []models.AuctionItem{
		{Title: "Lamp", Price: 40, Link: "/item/lamp"},
		{Title: "Cursed Mirror", Price: 13, Link: "/item/mirror"},
		{Title: "Chair", Price: 60, Link: "/item/chair"},
	}

	if posted := c.PostAll(items); posted != 2 {
		t.Errorf("posted: got %d, want 2", posted)
	}
}
