// Package fares resolves a destination city to an airport code and looks up
// the fare-calendar price for the nearest Saturday departure from the home
// airport.
package fares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"getaway/internal/logger"
	"getaway/internal/models"
)

// ErrNoFares means the fare calendar had no entry departing on the target
// Saturday. This is the one recoverable error of the pipeline: it is surfaced
// as a "no tickets" notice rather than aborting the run.
var ErrNoFares = errors.New("no fares found")

// Client queries the airport suggestion and fare-calendar services.
type Client struct {
	suggestURL  string
	calendarURL string
	origin      string
	queryPrefix string
	httpClient  *http.Client
}

// NewClient creates a fare lookup client. origin is the fixed home airport
// code; queryPrefix is prepended to the city name in suggestion queries
// (the suggestion endpoint expects a route phrase, not a bare city).
func NewClient(suggestURL, calendarURL, origin, queryPrefix string, timeout time.Duration) *Client {
	return &Client{
		suggestURL:  suggestURL,
		calendarURL: calendarURL,
		origin:      origin,
		queryPrefix: queryPrefix,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ResolveIATA resolves a free-text destination name to a 3-letter airport
// code via the JSON suggestion endpoint.
func (c *Client) ResolveIATA(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("q", c.queryPrefix+city)

	var suggestion struct {
		Destination struct {
			IATA string `json:"iata"`
		} `json:"destination"`
	}
	if err := c.getJSON(ctx, c.suggestURL+"?"+q.Encode(), &suggestion); err != nil {
		return "", fmt.Errorf("failed to resolve airport code for %s: %w", city, err)
	}
	if suggestion.Destination.IATA == "" {
		return "", fmt.Errorf("suggestion service returned no airport code for %s", city)
	}
	return suggestion.Destination.IATA, nil
}

// NearestSaturday returns the date of the nearest Saturday at or after the
// given time, truncated to midnight.
func NearestSaturday(from time.Time) time.Time {
	date := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for date.Weekday() != time.Saturday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// FindTicket resolves the city's airport code and queries the fare calendar
// for a one-way departure from the home airport on the nearest Saturday.
// Among the entries matching that date the highest price wins; this mirrors
// the long-standing behavior of the service even though the overall goal is
// the cheapest getaway. Returns ErrNoFares when no entry matches the date.
func (c *Client) FindTicket(ctx context.Context, city string, now time.Time) (*models.Ticket, error) {
	iata, err := c.ResolveIATA(ctx, city)
	if err != nil {
		return nil, err
	}
	departDate := NearestSaturday(now)
	departStr := departDate.Format("2006-01-02")
	logger.Debug("Querying fare calendar: %s -> %s on %s", c.origin, iata, departStr)

	q := url.Values{}
	q.Set("origin", c.origin)
	q.Set("destination", iata)
	q.Set("depart_date", departStr)
	q.Set("one_way", "true")

	var calendar struct {
		BestPrices []struct {
			DepartDate string  `json:"depart_date"`
			Value      float64 `json:"value"`
		} `json:"best_prices"`
	}
	if err := c.getJSON(ctx, c.calendarURL+"?"+q.Encode(), &calendar); err != nil {
		return nil, fmt.Errorf("failed to query fare calendar: %w", err)
	}

	best := 0.0
	found := false
	for _, entry := range calendar.BestPrices {
		if entry.DepartDate != departStr {
			continue
		}
		if !found || entry.Value > best {
			best = entry.Value
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("%s to %s on %s: %w", c.origin, iata, departStr, ErrNoFares)
	}

	return &models.Ticket{
		ID:         uuid.New().String(),
		City:       city,
		Origin:     c.origin,
		IATA:       iata,
		DepartDate: departDate,
		Price:      best,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
