package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-traineeship-monitor/internal/listing"
)

var header = []string{
	"id", "title", "organization", "location", "deadline",
	"start_date", "duration", "description", "link", "discovered_at",
}

// CSVStore owns one site's append-only history file. Rows are only
// ever appended; the file is never rewritten or compacted.
type CSVStore struct {
	path string
}

func New(path string) *CSVStore {
	return &CSVStore{path: path}
}

// LoadAll reads the full history. A missing file means this is the
// first run. A broken file degrades to an empty history, so the run
// continues and treats everything on the page as new.
func (s *CSVStore) LoadAll() []listing.Listing {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("📋 No previous data at %s - this is the first run", s.path)
		} else {
			log.Printf("⚠️ Failed to read history %s: %v", s.path, err)
		}
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("⚠️ Failed to parse history %s: %v", s.path, err)
		return nil
	}

	var history []listing.Listing
	for i, row := range rows {
		if i == 0 || len(row) < len(header) {
			continue
		}
		discovered, _ := time.Parse(listing.TimeFormat, row[9])
		history = append(history, listing.Listing{
			ID:           row[0],
			Title:        row[1],
			Organization: row[2],
			Location:     row[3],
			Deadline:     row[4],
			StartDate:    row[5],
			Duration:     row[6],
			Description:  row[7],
			Link:         row[8],
			DiscoveredAt: discovered,
		})
	}

	log.Printf("📋 Loaded %d previously seen listings from %s", len(history), s.path)
	return history
}

// AppendNew appends the given listings, writing the header first iff
// the file did not exist yet.
func (s *CSVStore) AppendNew(listings []listing.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening history %s: %w", s.path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if writeHeader {
		writer.Write(header)
		log.Printf("🆕 Created new history file %s", s.path)
	}
	for _, l := range listings {
		writer.Write(record(l))
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("writing history %s: %w", s.path, err)
	}

	log.Printf("💾 Saved %d new listings to %s", len(listings), s.path)
	return nil
}

func record(l listing.Listing) []string {
	return []string{
		l.ID, l.Title, l.Organization, l.Location, l.Deadline,
		l.StartDate, l.Duration, l.Description, l.Link,
		l.DiscoveredAt.Format(listing.TimeFormat),
	}
}
