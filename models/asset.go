package models

import "time"

// Listing is one scraped marketplace item before persistence. All three
// fields must be present (price strictly positive) or the extractor drops it.
type Listing struct {
	Title string
	Price float64
	Link  string
}

// SkippedItem records a candidate block the extractor rejected and why,
// so callers can assert skip counts instead of inferring them from totals.
type SkippedItem struct {
	Reason string
}

// StoredAsset is a persisted listing. ID is assigned by the store at insert
// time and never changes; DateAdded defaults to insertion time.
type StoredAsset struct {
	ID        int64
	Title     string
	Price     float64
	Link      string
	DateAdded time.Time
}

// UndervaluedAsset is a StoredAsset annotated with how far its price sits
// below the mean of the snapshot it was computed from. Never persisted;
// recomputed on every analysis request.
type UndervaluedAsset struct {
	StoredAsset
	DiscountPercent float64
}

// AuctionItem is the subset of fields the auction API accepts.
type AuctionItem struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Link  string  `json:"link"`
}
