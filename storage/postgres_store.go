package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"asset-scout/models"
	"asset-scout/utils"
)

// PostgresStore persists scraped assets to PostgreSQL. Rows are append-only:
// ids are assigned by the database at insert time and never updated.
type PostgresStore struct {
	db     *sql.DB
	closed bool
}

// NewPostgresStore opens a connection to PostgreSQL, runs the idempotent
// schema migration, and returns a ready-to-use store. Failure here is fatal
// to the pipeline: no store, no run.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS assets (
			id         SERIAL PRIMARY KEY,
			title      TEXT          NOT NULL,
			price      NUMERIC(12,2) NOT NULL,
			link       TEXT          NOT NULL,
			date_added TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_assets_price ON assets(price);
	`)
	return err
}

// InsertBatch inserts all listings inside a single transaction. Any failure
// rolls the whole batch back; the store never partially commits. An empty
// batch is a no-op.
func (ps *PostgresStore) InsertBatch(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO assets (title, price, link) VALUES ($1, $2, $3)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("postgres: prepare: %w", err)
	}
	defer stmt.Close()

	for _, l := range listings {
		if _, err := stmt.Exec(l.Title, l.Price, l.Link); err != nil {
			tx.Rollback()
			return fmt.Errorf("postgres: insert %q: %w", l.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// Snapshot returns all stored assets in insertion order.
func (ps *PostgresStore) Snapshot() ([]models.StoredAsset, error) {
	rows, err := ps.db.Query(`
		SELECT id, title, price, link, date_added
		FROM assets
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: snapshot: %w", err)
	}
	defer rows.Close()

	var assets []models.StoredAsset
	for rows.Next() {
		var a models.StoredAsset
		if err := rows.Scan(&a.ID, &a.Title, &a.Price, &a.Link, &a.DateAdded); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Close releases the underlying connection. Safe to call more than once.
func (ps *PostgresStore) Close() error {
	if ps.closed {
		return nil
	}
	ps.closed = true
	return ps.db.Close()
}
