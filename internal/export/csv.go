// Package export serializes result sets to flat delimited files readable by
// common spreadsheet tools.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/obops/obadmin/internal/result"
)

// utf8BOM is prepended so spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultFilename synthesizes a timestamped CSV filename.
func DefaultFilename(now time.Time) string {
	return now.Format("ob_query_20060102_150405") + ".csv"
}

// WriteFile writes the entire set to path: one header line with the original
// header names, then one line per row with null cells as empty fields.
// A partially written file on error is an accepted failure mode.
func WriteFile(path string, set *result.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(set.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(set.Headers))
	for _, row := range set.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && !row[i].IsNull() {
				record[i] = row[i].String()
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
