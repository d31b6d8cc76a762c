package service

import (
	"context"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
)

// NotificationService delivers one chat notification per file. Each call is
// independent; a failure does not undo registry writes already committed.
type NotificationService interface {
	// SendFileNotification posts a single message carrying the file's
	// download link to the configured chat.
	SendFileNotification(ctx context.Context, secrets *entity.Secrets, credential *entity.Credential, file *entity.FileDetail) error
}
