package impl

import (
	"context"
	"log/slog"
	"slices"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/repository"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/service"
	"github.com/bossoq/flood-disaster-crawl/internal/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/usecase"
)

type crawlService struct {
	logger          *slog.Logger
	credentialRepo  repository.CredentialRepository
	fileRepo        repository.FileRepository
	catalogSvc      service.CatalogService
	tokenSvc        service.TokenService
	notificationSvc service.NotificationService
}

// NewCrawlService creates a new crawl service instance
func NewCrawlService(
	logger *slog.Logger,
	credentialRepo repository.CredentialRepository,
	fileRepo repository.FileRepository,
	catalogSvc service.CatalogService,
	tokenSvc service.TokenService,
	notificationSvc service.NotificationService,
) usecase.CrawlUsecase {
	return &crawlService{
		logger:          logger,
		credentialRepo:  credentialRepo,
		fileRepo:        fileRepo,
		catalogSvc:      catalogSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
	}
}

// Run executes a single crawl.
//
// The credential store is read before any network call so a broken deployment
// fails fast. Every previously unseen file is recorded in the registry during
// the diff pass, before notification eligibility is decided; a later refresh
// or notify failure therefore never causes a file to be re-detected as new.
func (s *crawlService) Run(ctx context.Context) (*usecase.RunSummary, error) {
	summary := &usecase.RunSummary{}

	secrets, err := s.credentialRepo.Secrets(ctx)
	if err != nil {
		return summary, errors.Wrap(err, "loading secrets")
	}

	credential, err := s.credentialRepo.Credential(ctx)
	if err != nil {
		return summary, errors.Wrap(err, "loading credential")
	}

	files, err := s.catalogSvc.ListFiles(ctx)
	if err != nil {
		return summary, errors.Wrap(err, "fetching catalog listing")
	}
	summary.Fetched = len(files)

	newFiles, err := s.diffAndRecord(ctx, files)
	if err != nil {
		summary.New = len(newFiles)

		return summary, errors.Wrap(err, "recording new files")
	}
	summary.New = len(newFiles)

	if len(newFiles) == 0 {
		s.logger.InfoContext(ctx, "No new files found")

		return summary, nil
	}

	// Soonest-discovered entries go out first: the remote lists oldest
	// first, so the notification loop walks the new set in reverse.
	slices.Reverse(newFiles)

	credential, err = s.refreshCredential(ctx, secrets, credential)
	if err != nil {
		return summary, err
	}

	for i := range newFiles {
		file := &newFiles[i]
		if err := s.notificationSvc.SendFileNotification(ctx, secrets, credential, file); err != nil {
			return summary, errors.Wrapf(err, "notifying file %s", file.ID)
		}

		summary.Notified++
		s.logger.InfoContext(ctx, "Notification sent",
			slog.String("fileId", file.ID),
			slog.String("subject", file.Subject),
		)
	}

	return summary, nil
}

// diffAndRecord walks the listing in fetch order, records every unseen entry
// and returns them in the order they were discovered. Registry writes stick
// regardless of what happens to the run afterwards.
func (s *crawlService) diffAndRecord(ctx context.Context, files []entity.FileDetail) ([]entity.FileDetail, error) {
	newFiles := make([]entity.FileDetail, 0, len(files))

	for i := range files {
		file := files[i]

		exists, err := s.fileRepo.Exists(ctx, file.StorageID())
		if err != nil {
			return newFiles, err
		}
		if exists {
			continue
		}

		if err := s.fileRepo.Create(ctx, &file); err != nil {
			return newFiles, err
		}

		s.logger.InfoContext(ctx, "New file found",
			slog.String("fileId", file.ID),
			slog.String("subject", file.Subject),
		)
		newFiles = append(newFiles, file)
	}

	return newFiles, nil
}

// refreshCredential exchanges the refresh token once and persists the new
// credential before any notification uses it.
func (s *crawlService) refreshCredential(ctx context.Context, secrets *entity.Secrets, credential *entity.Credential) (*entity.Credential, error) {
	fresh, err := s.tokenSvc.Refresh(ctx, secrets, credential)
	if err != nil {
		return nil, errors.Wrap(err, "refreshing token")
	}

	if err := s.credentialRepo.SaveCredential(ctx, fresh); err != nil {
		return nil, errors.Wrap(err, "persisting refreshed credential")
	}

	s.logger.InfoContext(ctx, "Token refreshed successfully")

	return fresh, nil
}
