package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"asset-scout/models"
)

// ExportUndervaluedCSV writes the ranked undervalued report to a CSV file,
// creating intermediate directories as needed. The file is truncated on
// every export; it is a report artifact, not a store.
func ExportUndervaluedCSV(path string, assets []models.UndervaluedAsset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"id", "title", "price", "discount_percent", "link", "date_added"}); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, a := range assets {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Title,
			strconv.FormatFloat(a.Price, 'f', 2, 64),
			strconv.FormatFloat(a.DiscountPercent, 'f', 1, 64),
			a.Link,
			a.DateAdded.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
