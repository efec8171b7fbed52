// Package gismeteo provides the weather portal client: city link discovery,
// rate-limited page fetches under a browser identity, and the field extractors
// that recover typed forecast values from the portal's markup.
//
// The extractors are pure functions over a parsed document. Each one returns
// either a scalar or a day-aligned sequence; absent optional sub-fields are
// reported as nil entries so a missing value never shifts a day's position.
package gismeteo

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// tenDaysPath is the suffix that turns a city landing link into its
// ten-day forecast page.
const tenDaysPath = "10-days/"

// userAgents is the pool of browser identities rotated across requests.
// The portal serves a stripped page to clients that look like bots.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
}

// Client provides access to the weather portal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a portal client. rps caps the request rate so ten city
// fetches don't hammer the site; burst is the limiter's burst size.
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int) *Client {
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// DiscoverCityURLs fetches the portal landing page and returns the absolute
// ten-day forecast URL for every city linked from the noscript city list.
// Truncation to the forecast city cap is the caller's responsibility.
func (c *Client) DiscoverCityURLs(ctx context.Context) ([]string, error) {
	doc, err := c.fetchDocument(ctx, c.baseURL+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landing page: %w", err)
	}

	var urls []string
	doc.Find("#noscript a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		urls = append(urls, c.baseURL+href+tenDaysPath)
	})

	if len(urls) == 0 {
		return nil, fmt.Errorf("no city links found on landing page")
	}
	return urls, nil
}

// CityPage fetches and parses one city's ten-day forecast page.
func (c *Client) CityPage(ctx context.Context, url string) (*goquery.Document, error) {
	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch city page %s: %w", url, err)
	}
	return doc, nil
}

// fetchDocument performs a rate-limited GET with a rotated browser identity
// and parses the response body. No retries: a failed fetch fails the run.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return doc, nil
}
