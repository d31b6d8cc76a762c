package service

import (
	"context"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
)

// TokenService exchanges a refresh token for a new credential via the
// identity provider's token endpoint.
type TokenService interface {
	// Refresh performs one refresh_token grant and returns a wholly new
	// credential parsed from the response.
	Refresh(ctx context.Context, secrets *entity.Secrets, credential *entity.Credential) (*entity.Credential, error)
}
