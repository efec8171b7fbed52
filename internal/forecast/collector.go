package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"getaway/internal/logger"
	"getaway/internal/models"
)

// Source is the portal boundary the collector drives: link discovery plus
// per-city page fetches.
type Source interface {
	DiscoverCityURLs(ctx context.Context) ([]string, error)
	CityPage(ctx context.Context, url string) (*goquery.Document, error)
}

// Collector loads up to maxCities forecasts and concatenates them into one
// city-major table.
type Collector struct {
	src       Source
	maxCities int
}

// NewCollector creates a collector over the given source.
func NewCollector(src Source, maxCities int) *Collector {
	if maxCities < 1 {
		maxCities = 1
	}
	return &Collector{src: src, maxCities: maxCities}
}

// Collect discovers city pages, truncates to the first maxCities, fetches and
// assembles each concurrently, and concatenates the ten-row blocks in
// discovery order. Any fetch or assembly failure aborts the whole run; there
// is no partial-result mode.
func (c *Collector) Collect(ctx context.Context, runDate time.Time) (models.ForecastTable, error) {
	urls, err := c.src.DiscoverCityURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("link discovery failed: %w", err)
	}
	if len(urls) > c.maxCities {
		urls = urls[:c.maxCities]
	}
	logger.Info("Collecting forecasts for %d cities", len(urls))

	// Fan out over the independent city fetches; blocks land in an indexed
	// slice so the joined table keeps discovery order.
	blocks := make([]models.ForecastTable, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxCities)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			doc, err := c.src.CityPage(gctx, url)
			if err != nil {
				return err
			}
			block, err := Assemble(doc, runDate)
			if err != nil {
				return fmt.Errorf("assembly failed for %s: %w", url, err)
			}
			logger.Debug("Assembled %d days for %s", len(block), block[0].City)
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := make(models.ForecastTable, 0, len(urls)*models.DaysPerCity)
	for _, block := range blocks {
		table = append(table, block...)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("assembled table is inconsistent: %w", err)
	}
	return table, nil
}
