package repository

import (
	"context"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
)

// CredentialRepository owns the durable representation of the OAuth credential
// and the static application secrets.
type CredentialRepository interface {
	// Secrets loads the static application identity.
	Secrets(ctx context.Context) (*entity.Secrets, error)

	// Credential loads the current OAuth credential.
	Credential(ctx context.Context) (*entity.Credential, error)

	// SaveCredential overwrites the stored credential with a freshly issued
	// one. The write is all-or-nothing.
	SaveCredential(ctx context.Context, credential *entity.Credential) error
}
