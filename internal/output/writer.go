package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reddit-data-collector/internal/models"
)

// DefaultPath returns a timestamped snapshot filename in the working
// directory, e.g. reddit_data_20260115_093000.json
func DefaultPath() string {
	return fmt.Sprintf("reddit_data_%s.json", time.Now().Format("20060102_150405"))
}

// Write serializes the collection result as indented JSON at path,
// creating parent directories as needed. It returns the number of bytes
// written.
func Write(result *models.CollectionResult, path string) (int64, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal result: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("write output file: %w", err)
	}

	return int64(len(data)), nil
}
