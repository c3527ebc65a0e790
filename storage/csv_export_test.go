package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asset-scout/models"
)

func TestExportUndervaluedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")

	assets := []models.UndervaluedAsset{
		{
			StoredAsset: models.StoredAsset{
				ID: 1, Title: "Lamp", Price: 10, Link: "/item/lamp",
				DateAdded: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			},
			DiscountPercent: 75,
		},
	}

	if err := ExportUndervaluedCSV(path, assets); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want header + 1", len(rows))
	}
	if rows[1][1] != "Lamp" || rows[1][2] != "10.00" || rows[1][3] != "75.0" {
		t.Errorf("data row: got %v", rows[1])
	}
}
