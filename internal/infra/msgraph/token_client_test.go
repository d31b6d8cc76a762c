package msgraph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testSecrets() *entity.Secrets {
	return &entity.Secrets{
		TenantID:     "tenant-1",
		ClientID:     "client-1",
		ClientSecret: "hunter2",
		ChatID:       "19:meeting",
	}
}

func testCredential() *entity.Credential {
	return &entity.Credential{
		TokenType:    "Bearer",
		Scope:        "ChatMessage.Send offline_access",
		AccessToken:  "stale-access",
		RefreshToken: "refresh-1",
	}
}

func newTestTokenClient(t *testing.T, handler http.HandlerFunc) *tokenClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &tokenClient{
		host:       server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     discardLogger(),
	}
}

func TestTokenClient_Refresh(t *testing.T) {
	c := newTestTokenClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tenant-1/oauth2/v2.0/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "hunter2", r.PostForm.Get("client_secret"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "ChatMessage.Send offline_access", r.PostForm.Get("scope"))

		json.NewEncoder(w).Encode(entity.Credential{
			TokenType:    "Bearer",
			Scope:        "ChatMessage.Send offline_access",
			ExpiresIn:    3599,
			ExtExpiresIn: 3599,
			AccessToken:  "fresh-access",
			RefreshToken: "refresh-2",
			IDToken:      "id-2",
		})
	})

	fresh, err := c.Refresh(context.Background(), testSecrets(), testCredential())
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", fresh.AccessToken)
	assert.Equal(t, "refresh-2", fresh.RefreshToken)
	assert.Equal(t, 3599, fresh.ExpiresIn)
}

func TestTokenClient_RefreshRejected(t *testing.T) {
	c := newTestTokenClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	_, err := c.Refresh(context.Background(), testSecrets(), testCredential())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitAuth, domainerrors.ExitCodeFor(err))
}

func TestTokenClient_RefreshUnparsableBody(t *testing.T) {
	c := newTestTokenClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not-json`))
	})

	_, err := c.Refresh(context.Background(), testSecrets(), testCredential())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding token response")
}

func TestTokenClient_RefreshEmptyAccessToken(t *testing.T) {
	c := newTestTokenClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token_type":"Bearer"}`))
	})

	_, err := c.Refresh(context.Background(), testSecrets(), testCredential())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitAuth, domainerrors.ExitCodeFor(err))
}

func TestTokenClient_RefreshTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c := &tokenClient{
		host:       server.URL,
		httpClient: &http.Client{Timeout: time.Second},
		logger:     discardLogger(),
	}

	_, err := c.Refresh(context.Background(), testSecrets(), testCredential())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitAuth, domainerrors.ExitCodeFor(err))
}
