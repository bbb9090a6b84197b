package monitor

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"go-traineeship-monitor/internal/diff"
	"go-traineeship-monitor/internal/extract"
	"go-traineeship-monitor/internal/fetch"
	"go-traineeship-monitor/internal/listing"
	"go-traineeship-monitor/internal/site"
	"go-traineeship-monitor/internal/store"
)

// Notifier delivers an alert about newly discovered listings.
type Notifier interface {
	NotifyNew(s site.Site, newListings []listing.Listing) error
}

// Monitor runs one fetch-parse-diff-notify cycle per site.
type Monitor struct {
	fetcher  *fetch.Client
	notifier Notifier
	dataDir  string
}

func New(fetcher *fetch.Client, notifier Notifier, dataDir string) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		notifier: notifier,
		dataDir:  dataDir,
	}
}

// Run checks one site. It returns an error only when the page could
// not be fetched or parsed at all; a page whose structure no longer
// yields containers is logged and treated as a completed run, since
// the site may have legitimately changed. Notification and persistence
// failures never abort the cycle.
func (m *Monitor) Run(ctx context.Context, s site.Site) error {
	log.Printf("🔍 Checking for new %s traineeships...", s.Name)

	page, err := m.fetcher.Page(ctx, s.URL)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return fmt.Errorf("%s: parsing page: %w", s.Name, err)
	}
	log.Printf("📄 Parsing %s page: %s", s.Name, clean(doc.Find("title").First().Text()))

	containers := extract.Locate(doc, s)
	if len(containers) == 0 {
		log.Printf("⚠️ Could not find %s listing containers - page structure may have changed", s.Name)
		return nil
	}
	log.Printf("Found %d potential %s listing containers", len(containers), s.Name)

	extractor := extract.NewExtractor(s)
	now := time.Now()
	var batch []listing.Listing
	for _, c := range containers {
		l, ok := extractor.Listing(c, now)
		if !ok {
			continue
		}
		batch = append(batch, l)
	}
	log.Printf("✅ Successfully parsed %d listings from %s", len(batch), s.Name)

	if len(batch) == 0 {
		log.Printf("⚠️ No %s listings parsed - check if page structure has changed", s.Name)
		return nil
	}

	st := store.New(filepath.Join(m.dataDir, s.DataFile))
	fresh := diff.NewListings(batch, diff.IDSet(st.LoadAll()))
	log.Printf("🔍 %s: %d listings on page -> %d new", s.Name, len(batch), len(fresh))

	if len(fresh) == 0 {
		log.Printf("No new %s listings found", s.Name)
		return nil
	}

	//a failed alert must not block persisting what was seen
	if err := m.notifier.NotifyNew(s, fresh); err != nil {
		log.Printf("⚠️ Failed to send %s alert: %v", s.Name, err)
	}

	if err := st.AppendNew(fresh); err != nil {
		log.Printf("⚠️ Failed to persist new %s listings: %v", s.Name, err)
	}

	return nil
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
