package telegram

import (
	"fmt"
	"strings"
	"time"

	"go-traineeship-monitor/internal/listing"
	"go-traineeship-monitor/internal/site"
)

// shortMessageMax bounds the fallback alert sent when Telegram rejects
// the full one for being too long.
const shortMessageMax = 3

// BuildMessage composes the full alert enumerating every new listing.
func BuildMessage(s site.Site, listings []listing.Listing, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *%d New %s Traineeship(s) Found!*\n\n", s.Emoji, len(listings), s.Name)
	fmt.Fprintf(&b, "Found on %s\n\n", now.Format(listing.TimeFormat))

	for i, l := range listings {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, l.Title)
		fmt.Fprintf(&b, "🏢 Company: %s\n", l.Organization)
		fmt.Fprintf(&b, "📍 Location: %s\n", l.Location)

		if l.StartDate != "" {
			fmt.Fprintf(&b, "📅 Start: %s\n", l.StartDate)
		}
		if l.Duration != "" {
			fmt.Fprintf(&b, "⏱️ Duration: %s\n", l.Duration)
		}
		if l.Deadline != "" {
			fmt.Fprintf(&b, "⏰ Deadline: %s\n", l.Deadline)
		}
		if strings.HasPrefix(l.Link, "http") {
			fmt.Fprintf(&b, "🔗 [View Details](%s)\n", l.Link)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "[View All %s Traineeships](%s)\n", s.Name, s.URL)
	fmt.Fprintf(&b, "_Source: %s - Auto-generated alert_", s.Name)

	return b.String()
}

// BuildShortMessage lists only the first few listings by title and
// organization, with a count of the rest.
func BuildShortMessage(s site.Site, listings []listing.Listing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *%d New %s Traineeships Found!*\n\n", s.Emoji, len(listings), s.Name)

	shown := listings
	if len(shown) > shortMessageMax {
		shown = shown[:shortMessageMax]
	}
	for _, l := range shown {
		fmt.Fprintf(&b, "• %s at %s\n", l.Title, l.Organization)
	}
	if rest := len(listings) - shortMessageMax; rest > 0 {
		fmt.Fprintf(&b, "• ... and %d more\n", rest)
	}

	fmt.Fprintf(&b, "\n[View All](%s)", s.URL)

	return b.String()
}
