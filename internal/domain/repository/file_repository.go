// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
)

// ErrDuplicateFile is returned when a file id is inserted twice.
var ErrDuplicateFile = errors.New("file already recorded")

// FileRepository is the durable set of previously observed file identities.
// Rows are append-only: once an id is recorded it is never reported as new
// again, regardless of whether its notification ever went out.
type FileRepository interface {
	// Exists reports whether the given storage id has been recorded.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create records a file under its storage id. The caller is expected to
	// check Exists first; a conflicting insert returns ErrDuplicateFile.
	Create(ctx context.Context, file *entity.FileDetail) error
}
