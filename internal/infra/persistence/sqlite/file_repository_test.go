package sqlite

import (
	"context"
	"testing"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/repository"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlitedriver.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ContentModel{}))

	return db
}

func TestFileRepository_ExistsBeforeAndAfterCreate(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))
	ctx := context.Background()

	file := &entity.FileDetail{ID: "10971", Subject: "Flood Notice A", LinkDownload: "https://x/a.pdf"}

	exists, err := repo.Exists(ctx, file.StorageID())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, file))

	exists, err = repo.Exists(ctx, file.StorageID())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileRepository_CreateDuplicate(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))
	ctx := context.Background()

	file := &entity.FileDetail{ID: "42", Subject: "Flood Notice B", LinkDownload: "https://x/b.pdf"}

	require.NoError(t, repo.Create(ctx, file))

	err := repo.Create(ctx, file)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateFile)
	assert.Equal(t, domainerrors.ExitStorage, domainerrors.ExitCodeFor(err))
}

func TestFileRepository_NonNumericIDsShareKeyZero(t *testing.T) {
	repo := NewFileRepository(newTestDB(t))
	ctx := context.Background()

	first := &entity.FileDetail{ID: "notice-a", Subject: "A", LinkDownload: "https://x/a.pdf"}
	second := &entity.FileDetail{ID: "notice-b", Subject: "B", LinkDownload: "https://x/b.pdf"}

	require.NoError(t, repo.Create(ctx, first))

	// Both collapse to storage id 0, so the second insert is a duplicate.
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateFile)

	exists, err := repo.Exists(ctx, 0)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileRepository_RowsKeepSubjectAndLink(t *testing.T) {
	db := newTestDB(t)
	repo := NewFileRepository(db)
	ctx := context.Background()

	file := &entity.FileDetail{ID: "7", Subject: "Flood Notice C", LinkDownload: "https://x/c.pdf"}
	require.NoError(t, repo.Create(ctx, file))

	var row model.ContentModel
	require.NoError(t, db.WithContext(ctx).Where("id = ?", int64(7)).First(&row).Error)
	assert.Equal(t, "Flood Notice C", row.Subject)
	assert.Equal(t, "https://x/c.pdf", row.LinkDownload)
}
