package fetcher

import (
	"context"

	"github.com/reddit-data-collector/internal/discovery"
	"github.com/reddit-data-collector/internal/models"
)

// Collector ties target selection to the collection loop for callers
// that want a complete run as a single operation
type Collector struct {
	selector *discovery.Selector
	fetcher  *Fetcher
}

// NewCollector creates a new Collector
func NewCollector(selector *discovery.Selector, fetcher *Fetcher) *Collector {
	return &Collector{
		selector: selector,
		fetcher:  fetcher,
	}
}

// Run selects the target subreddits and collects them all
func (c *Collector) Run(ctx context.Context) *models.CollectionResult {
	targets := c.selector.Targets(ctx)
	return c.fetcher.CollectAll(ctx, targets)
}
