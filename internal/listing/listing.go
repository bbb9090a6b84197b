package listing

import "time"

// TimeFormat is how DiscoveredAt is serialized in the CSV history.
const TimeFormat = "2006-01-02 15:04:05"

// Listing is one traineeship opportunity extracted from a listing page.
type Listing struct {
	ID           string
	Title        string
	Organization string
	Location     string
	Deadline     string
	StartDate    string
	Duration     string
	Description  string
	Link         string
	DiscoveredAt time.Time
}
