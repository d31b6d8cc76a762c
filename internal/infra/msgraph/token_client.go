// Package msgraph implements the Microsoft identity platform and Microsoft
// Graph clients used to authenticate and deliver chat notifications.
package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bossoq/flood-disaster-crawl/config"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/service"

	"go.uber.org/fx"
)

type tokenClient struct {
	host       string
	httpClient *http.Client
	logger     *slog.Logger
}

// TokenParams defines the required parameters
type TokenParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenClient is the constructor for the token-endpoint client.
func NewTokenClient(params TokenParams) service.TokenService {
	return &tokenClient{
		host: params.Config.Auth.Host,
		httpClient: &http.Client{
			Timeout: params.Config.Auth.Timeout,
		},
		logger: params.Logger,
	}
}

// Refresh performs one refresh_token grant against the tenant's token
// endpoint and returns the wholly new credential it issues.
func (c *tokenClient) Refresh(ctx context.Context, secrets *entity.Secrets, credential *entity.Credential) (*entity.Credential, error) {
	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimSuffix(c.host, "/"), secrets.TenantID)

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", secrets.ClientID)
	form.Set("client_secret", secrets.ClientSecret)
	form.Set("refresh_token", credential.RefreshToken)
	form.Set("scope", credential.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, domainerrors.ErrTokenRefresh.WrapMessage("building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTokenRefresh.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrTokenRefresh.WrapMessage("reading token response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.LogAttrs(ctx, slog.LevelError, "Token endpoint rejected refresh",
			slog.String("status", resp.Status),
		)

		return nil, domainerrors.ErrTokenRefresh.WrapMessage(resp.Status)
	}

	fresh := new(entity.Credential)
	if err := json.Unmarshal(body, fresh); err != nil {
		return nil, domainerrors.ErrTokenRefresh.WrapMessage("decoding token response")
	}

	if fresh.AccessToken == "" {
		return nil, domainerrors.ErrTokenRefresh.WrapMessage("token response carries no access token")
	}

	return fresh, nil
}
