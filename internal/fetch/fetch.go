package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Headers that make the request look like an ordinary browser visit.
// Accept-Encoding is left to the transport so gzip bodies are
// decompressed transparently.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Client fetches listing pages with a politeness delay between visits.
type Client struct {
	http  *resty.Client
	delay time.Duration
}

func New(delay time.Duration) *Client {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeaders(browserHeaders)

	return &Client{
		http:  client,
		delay: delay,
	}
}

// Page fetches one listing page and returns its raw HTML. A single
// attempt only; any transport failure or non-2xx status is returned as
// an error for the caller to abort the run with.
func (c *Client) Page(ctx context.Context, url string) (string, error) {
	//be respectful to the server
	if c.delay > 0 {
		log.Printf("⏳ Waiting %v before fetching %s", c.delay, url)
		time.Sleep(c.delay)
	}

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status())
	}

	return resp.String(), nil
}
