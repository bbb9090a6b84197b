package extract

import (
	"log"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-traineeship-monitor/internal/site"
)

// fallbackCap bounds the link-bearing fallback strategy so a pathological
// page cannot flood the batch with noise.
const fallbackCap = 20

// knownSelectors are tried one by one against the whole document; the
// first that matches more than one node wins. Ordered from most to
// least specific.
var knownSelectors = []string{
	".traineeship-item", ".job-item", ".internship-item",
	".listing-item", ".opportunity-item", ".vacancy-item",
	`[class*="traineeship"]`, `[class*="internship"]`, `[class*="job"]`,
	".card", ".post", ".entry", ".item",
	"article", ".result", ".listing",
}

// Locate finds the nodes that most plausibly represent individual
// listings, using a cascade of strategies. An empty result means the
// page structure changed; the caller decides what to do with that.
func Locate(doc *goquery.Document, s site.Site) []*Container {
	//Strategy 1: known listing selectors, site-specific hints first
	selectors := append(append([]string{}, s.ExtraSelectors...), knownSelectors...)
	for _, selector := range selectors {
		found := doc.Find(selector)
		if found.Length() > 1 {
			log.Printf("Found containers using selector: %s", selector)
			return wrap(found)
		}
	}

	//Strategy 2: repeated div structures sharing a class signature
	if containers := repeatedStructures(doc); containers != nil {
		return containers
	}

	//Strategy 3: fallback - any container-like node holding a link
	var fallback []*Container
	doc.Find("div, article, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Find("a[href]").Length() == 0 {
			return true
		}
		fallback = append(fallback, newContainer(sel, len(fallback)))
		return len(fallback) < fallbackCap
	})
	if len(fallback) > 0 {
		log.Printf("Using fallback strategy, found %d containers", len(fallback))
	}
	return fallback
}

// repeatedStructures groups divs by their exact class signature and
// accepts the first signature seen 3+ times whose group survives
// validation. Signatures are kept in document order so the result is
// deterministic.
func repeatedStructures(doc *goquery.Document) []*Container {
	groups := make(map[string][]*goquery.Selection)
	var order []string

	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		sig := classSignature(sel)
		if sig == "" {
			return
		}
		if _, seen := groups[sig]; !seen {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], sel)
	})

	for _, sig := range order {
		members := groups[sig]
		if len(members) < 3 {
			continue
		}
		if !validateGroup(members) {
			continue
		}
		log.Printf("Found containers using repeated pattern: .%s (%d items)", sig, len(members))
		containers := make([]*Container, len(members))
		for i, member := range members {
			containers[i] = newContainer(member, i)
		}
		return containers
	}
	return nil
}

func classSignature(sel *goquery.Selection) string {
	classes := strings.Fields(sel.AttrOr("class", ""))
	if len(classes) == 0 {
		return ""
	}
	sort.Strings(classes)
	return strings.Join(classes, " ")
}

// validateGroup guards against picking layout wrappers: among the first
// 5 members, at least 2 must contain a link and at least 2 must carry
// non-trivial text.
func validateGroup(members []*goquery.Selection) bool {
	n := len(members)
	if n > 5 {
		n = 5
	}

	hasLinks, hasText := 0, 0
	for _, member := range members[:n] {
		if member.Find("a[href]").Length() > 0 {
			hasLinks++
		}
		if len([]rune(compactText(member))) > 20 {
			hasText++
		}
	}
	return hasLinks >= 2 && hasText >= 2
}

func wrap(sel *goquery.Selection) []*Container {
	containers := make([]*Container, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		containers = append(containers, newContainer(s, i))
	})
	return containers
}
