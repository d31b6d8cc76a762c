package sqlite

import (
	"context"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/repository"
	"github.com/bossoq/flood-disaster-crawl/internal/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// fileRepository implements the repository.FileRepository interface.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{
		db: db,
	}
}

// Exists reports whether the given storage id has been recorded.
func (repo *fileRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var contentM model.ContentModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, domainerrors.ErrStorage.WrapMessage("failed to query file by id")
	}

	return true, nil
}

// Create records a file under its storage id.
func (repo *fileRepository) Create(ctx context.Context, file *entity.FileDetail) error {
	contentM := fromFileDomain(file)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Join(repository.ErrDuplicateFile, domainerrors.ErrDuplicateKey)
		}

		return domainerrors.ErrStorage.WrapMessage("failed to record file")
	}

	return nil
}

// --- Mapper Functions ---

// fromFileDomain converts a domain FileDetail entity to a GORM ContentModel.
func fromFileDomain(data *entity.FileDetail) *model.ContentModel {
	if data == nil {
		return nil
	}

	return &model.ContentModel{
		ID:           data.StorageID(),
		Subject:      data.Subject,
		LinkDownload: data.LinkDownload,
	}
}
