package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/reddit-data-collector/internal/models"
)

func sampleResult() *models.CollectionResult {
	return &models.CollectionResult{
		Metadata: models.Metadata{
			RunID:           "run-1",
			FetchTimestamp:  time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
			TotalSubreddits: 1,
			SubredditList:   []string{"golang"},
		},
		Subreddits: map[string]*models.SubredditData{
			"golang": {
				Name:  "golang",
				Info:  map[string]interface{}{"name": "golang"},
				Posts: []models.Post{},
			},
		},
		Summary: models.Summary{
			SuccessfulSubreddits: 1,
			Errors:               []models.CollectionError{},
		},
	}
}

func TestWriteProducesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "snapshot.json")

	size, err := Write(sampleResult(), path)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if size <= 0 {
		t.Errorf("Expected positive byte count, got %d", size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	if int64(len(data)) != size {
		t.Errorf("Reported size %d does not match file size %d", size, len(data))
	}

	var decoded models.CollectionResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Metadata.RunID != "run-1" {
		t.Errorf("Expected run ID round-tripped, got %q", decoded.Metadata.RunID)
	}
	if _, ok := decoded.Subreddits["golang"]; !ok {
		t.Error("Expected golang snapshot in output")
	}
}

func TestDefaultPathShape(t *testing.T) {
	path := DefaultPath()
	matched, err := regexp.MatchString(`^reddit_data_\d{8}_\d{6}\.json$`, path)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("Unexpected default path %q", path)
	}
}
