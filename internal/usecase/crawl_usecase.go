// Package usecase defines the application's business operation interfaces.
package usecase

import (
	"context"
)

// RunSummary reports what one crawl accomplished.
type RunSummary struct {
	Fetched  int // entries in the remote listing
	New      int // entries recorded for the first time
	Notified int // chat messages delivered
}

// CrawlUsecase runs one fetch → diff → persist → refresh → notify cycle.
type CrawlUsecase interface {
	// Run executes a single crawl. The returned summary is valid even when
	// err is non-nil and reflects how far the run progressed.
	Run(ctx context.Context) (*RunSummary, error)
}
