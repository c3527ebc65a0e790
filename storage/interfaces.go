package storage

import "asset-scout/models"

// AssetStore is the interface any persistence backend must satisfy.
// InsertBatch commits all listings or none; Snapshot reflects every
// previously committed insert.
type AssetStore interface {
	InsertBatch(listings []models.Listing) error
	Snapshot() ([]models.StoredAsset, error)
	Close() error
}
