// Package service defines interfaces for external collaborators of the crawl.
package service

import (
	"context"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
)

// CatalogService fetches the current remote file listing.
type CatalogService interface {
	// ListFiles returns the full listing in the order the remote reports it.
	ListFiles(ctx context.Context) ([]entity.FileDetail, error)
}
