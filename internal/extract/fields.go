package extract

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go-traineeship-monitor/internal/listing"
	"go-traineeship-monitor/internal/site"
)

// strategy derives one candidate value for a field. Each field is an
// ordered cascade of strategies; the first non-empty result wins.
type strategy func(*Container) string

func firstOf(c *Container, strategies ...strategy) string {
	for _, s := range strategies {
		if v := s(c); v != "" {
			return v
		}
	}
	return ""
}

const (
	fingerprintLen = 12
	minTitleLen    = 3
	descriptionMax = 200
)

var titleSelectors = []string{
	"h1", "h2", "h3", "h4", "h5",
	".title", ".job-title", ".traineeship-title", ".position-title",
	`[class*="title"]`, `[class*="heading"]`,
	`a[href*="/traineeship"]`, `a[href*="/internship"]`, `a[href*="/job"]`,
}

var organizationSelectors = []string{
	".company", ".organization", ".employer",
	`[class*="company"]`, `[class*="org"]`, `[class*="employer"]`,
}

var locationSelectors = []string{
	".location", ".city", ".country", ".place",
	`[class*="location"]`, `[class*="city"]`, `[class*="country"]`,
}

var organizationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Company:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Organization:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Employer:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)at\s+([A-Z][^\n,]+(?:Ltd|Inc|Corp|GmbH|B\.V\.|S\.A\.))`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Location:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)City:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Country:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)in\s+([A-Z][a-z]+(?:,\s*[A-Z][a-z]+)*)`),
}

var deadlineLabels = []string{"Deadline:", "Apply by:", "Application deadline:", "Due:"}
var startLabels = []string{"Start date:", "Starting:", "Begins:", "From:"}

var durationLabeled = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Duration:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Length:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Period:\s*([^\n]+)`),
}

var durationBare = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*months?`),
	regexp.MustCompile(`(?i)\d+\s*weeks?`),
}

// Extractor derives listing records from located containers for one
// site. Site hints extend the generic labeled-date sets.
type Extractor struct {
	site           site.Site
	deadlineLabels []*regexp.Regexp
	startLabels    []*regexp.Regexp
}

func NewExtractor(s site.Site) *Extractor {
	return &Extractor{
		site:           s,
		deadlineLabels: labelPatterns(s.ExtraDeadlineLabels, deadlineLabels),
		startLabels:    labelPatterns(s.ExtraStartLabels, startLabels),
	}
}

func labelPatterns(extra, generic []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(extra)+len(generic))
	for _, label := range append(append([]string{}, extra...), generic...) {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(label)+`\s*([^\n]+)`))
	}
	return patterns
}

// Listing turns one container into a record. A container whose title
// cannot be resolved to at least 3 characters yields ok=false and is
// dropped from the batch.
func (e *Extractor) Listing(c *Container, now time.Time) (listing.Listing, bool) {
	title := e.title(c)
	if len([]rune(strings.TrimSpace(title))) < minTitleLen {
		return listing.Listing{}, false
	}

	return listing.Listing{
		ID:           fingerprint(c),
		Title:        title,
		Organization: e.organization(c),
		Location:     e.location(c),
		Deadline:     labeledDate(c, e.deadlineLabels),
		StartDate:    labeledDate(c, e.startLabels),
		Duration:     duration(c),
		Description:  description(c),
		Link:         e.link(c),
		DiscoveredAt: now,
	}, true
}

// fingerprint hashes the container's text prefix together with its
// position on the page. Deterministic for identical input, but a page
// that reorders unchanged listings yields different ids for them, so a
// pure reorder can be re-reported as new.
func fingerprint(c *Container) string {
	text := []rune(c.CompactText())
	if len(text) > 100 {
		text = text[:100]
	}
	sum := md5.Sum([]byte(string(text) + strconv.Itoa(c.index)))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

func (e *Extractor) title(c *Container) string {
	return firstOf(c,
		bySelector(minTitleLen+1, titleSelectors...),
		linkText(minTitleLen+1),
		boldText(minTitleLen+1),
		placeholderTitle,
	)
}

func (e *Extractor) organization(c *Container) string {
	return firstOf(c,
		bySelector(1, organizationSelectors...),
		byPattern(organizationPatterns),
		constant("Unknown Organization"),
	)
}

func (e *Extractor) location(c *Container) string {
	return firstOf(c,
		bySelector(1, locationSelectors...),
		byPattern(locationPatterns),
		constant("Unknown Location"),
	)
}

// bySelector tries each selector scoped to the container and returns
// the first match whose text reaches minLen characters.
func bySelector(minLen int, selectors ...string) strategy {
	return func(c *Container) string {
		for _, selector := range selectors {
			found := c.sel.Find(selector).First()
			if found.Length() == 0 {
				continue
			}
			if v := clean(compactText(found)); len([]rune(v)) >= minLen {
				return v
			}
		}
		return ""
	}
}

// byPattern scans the container's raw text with labeled patterns and
// returns the first captured group.
func byPattern(patterns []*regexp.Regexp) strategy {
	return func(c *Container) string {
		text := c.RawText()
		for _, p := range patterns {
			if m := p.FindStringSubmatch(text); m != nil {
				return clean(m[1])
			}
		}
		return ""
	}
}

func constant(v string) strategy {
	return func(*Container) string { return v }
}

func linkText(minLen int) strategy {
	return func(c *Container) string {
		found := c.sel.Find("a[href]").First()
		if found.Length() == 0 {
			return ""
		}
		if v := clean(compactText(found)); len([]rune(v)) >= minLen {
			return v
		}
		return ""
	}
}

func boldText(minLen int) strategy {
	return func(c *Container) string {
		found := c.sel.Find("strong, b").First()
		if found.Length() == 0 {
			return ""
		}
		if v := clean(compactText(found)); len([]rune(v)) >= minLen {
			return v
		}
		return ""
	}
}

// placeholderTitle is the last resort, keyed to whatever identifier
// the container carries.
func placeholderTitle(c *Container) string {
	return fmt.Sprintf("Traineeship Opportunity #%s", c.sel.AttrOr("id", "unknown"))
}

// labeledDate finds the first matching label and narrows its value to a
// date-shaped substring. The first label that matches decides the
// result, even when its text holds no recognizable date.
func labeledDate(c *Container, labels []*regexp.Regexp) string {
	text := c.RawText()
	for _, p := range labels {
		if m := p.FindStringSubmatch(text); m != nil {
			return dateIn(m[1])
		}
	}
	return ""
}

func duration(c *Container) string {
	text := c.RawText()
	for _, p := range durationLabeled {
		if m := p.FindStringSubmatch(text); m != nil {
			return clean(m[1])
		}
	}
	for _, p := range durationBare {
		if m := p.FindString(text); m != "" {
			return clean(m)
		}
	}
	return ""
}

// description strips headings from a copy of the container, then takes
// the first sentence of substance.
func description(c *Container) string {
	clone := c.sel.Clone()
	clone.Find("h1, h2, h3, h4, h5, h6").Remove()

	text := compactText(clone)
	for _, sentence := range strings.Split(text, ".") {
		s := strings.TrimSpace(sentence)
		if len([]rune(s)) > 20 {
			return truncate(clean(s), descriptionMax)
		}
	}
	return ""
}

func (e *Extractor) link(c *Container) string {
	href, ok := c.sel.Find("a[href]").First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(href, "/"):
		return e.site.BaseURL + href
	case strings.HasPrefix(href, "http"):
		return href
	default:
		return e.site.BaseURL + "/" + href
	}
}
