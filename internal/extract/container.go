package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Container wraps one located listing node together with its zero-based
// position in the located sequence. The position is part of the
// listing's identity, so containers must not be reordered after
// location.
type Container struct {
	sel   *goquery.Selection
	index int

	compact     string
	compactDone bool
	raw         string
	rawDone     bool
}

func newContainer(sel *goquery.Selection, index int) *Container {
	return &Container{sel: sel, index: index}
}

func (c *Container) Index() int { return c.index }

// CompactText is the whitespace-stripped flattening of the container:
// every text node trimmed and concatenated. This is the form the
// fingerprint and length heuristics operate on.
func (c *Container) CompactText() string {
	if !c.compactDone {
		c.compact = compactText(c.sel)
		c.compactDone = true
	}
	return c.compact
}

// RawText keeps the document's original whitespace, so line-oriented
// labeled patterns ("Deadline: ...") can scan it.
func (c *Container) RawText() string {
	if !c.rawDone {
		c.raw = rawText(c.sel)
		c.rawDone = true
	}
	return c.raw
}

func compactText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		walkText(n, func(data string) {
			b.WriteString(strings.TrimSpace(data))
		})
	}
	return norm.NFC.String(b.String())
}

func rawText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		walkText(n, func(data string) {
			b.WriteString(data)
		})
	}
	return norm.NFC.String(b.String())
}

func walkText(n *html.Node, emit func(string)) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		emit(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkText(child, emit)
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// clean collapses runs of whitespace and trims the result. Every field
// value passes through here before it is stored or compared.
func clean(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
