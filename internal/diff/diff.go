// Pure set-difference between the current batch and the historical
// seen-set. No fuzzy matching: a listing is new iff its id has never
// been persisted. Duplicate ids inside one batch are not collapsed
// against each other, only against history.

package diff

import (
	mapset "github.com/deckarep/golang-set/v2"

	"go-traineeship-monitor/internal/listing"
)

// NewListings returns the listings whose ids are absent from seen,
// preserving the order they were located on the page.
func NewListings(batch []listing.Listing, seen mapset.Set[string]) []listing.Listing {
	fresh := make([]listing.Listing, 0, len(batch))
	for _, l := range batch {
		if !seen.Contains(l.ID) {
			fresh = append(fresh, l)
		}
	}
	return fresh
}

// IDSet collects the ids of previously persisted listings.
func IDSet(history []listing.Listing) mapset.Set[string] {
	ids := mapset.NewThreadUnsafeSet[string]()
	for _, l := range history {
		ids.Add(l.ID)
	}
	return ids
}
