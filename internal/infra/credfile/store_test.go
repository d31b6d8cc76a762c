package credfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func newTestStore(t *testing.T) (secretsPath, credentialsPath string, store *credentialStore) {
	t.Helper()

	dir := t.TempDir()
	secretsPath = filepath.Join(dir, "secrets.json")
	credentialsPath = filepath.Join(dir, "credentials.json")
	store = NewWithPaths(secretsPath, credentialsPath).(*credentialStore)

	return secretsPath, credentialsPath, store
}

func TestCredentialStore_Secrets(t *testing.T) {
	secretsPath, _, store := newTestStore(t)
	writeJSON(t, secretsPath, entity.Secrets{
		TenantID:     "tenant",
		ClientID:     "client",
		ClientSecret: "secret",
		ChatID:       "19:meeting",
	})

	secrets, err := store.Secrets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tenant", secrets.TenantID)
	assert.Equal(t, "19:meeting", secrets.ChatID)
}

func TestCredentialStore_SecretsMissingFile(t *testing.T) {
	_, _, store := newTestStore(t)

	_, err := store.Secrets(context.Background())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitConfig, domainerrors.ExitCodeFor(err))
}

func TestCredentialStore_SecretsMissingField(t *testing.T) {
	secretsPath, _, store := newTestStore(t)
	writeJSON(t, secretsPath, map[string]string{
		"tenant_id": "tenant",
		"client_id": "client",
		// client_secret and chat_id absent
	})

	_, err := store.Secrets(context.Background())
	assert.Error(t, err)
}

func TestCredentialStore_CredentialRoundTrip(t *testing.T) {
	_, credentialsPath, store := newTestStore(t)
	ctx := context.Background()

	original := &entity.Credential{
		TokenType:    "Bearer",
		Scope:        "ChatMessage.Send",
		ExpiresIn:    3599,
		ExtExpiresIn: 3599,
		AccessToken:  "access",
		RefreshToken: "refresh",
		IDToken:      "id",
	}
	require.NoError(t, store.SaveCredential(ctx, original))

	loaded, err := store.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// Saving again replaces the document wholesale.
	replacement := &entity.Credential{TokenType: "Bearer", AccessToken: "new-access", RefreshToken: "new-refresh"}
	require.NoError(t, store.SaveCredential(ctx, replacement))

	loaded, err = store.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", loaded.AccessToken)
	assert.Empty(t, loaded.IDToken)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(credentialsPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCredentialStore_CredentialUnparsable(t *testing.T) {
	_, credentialsPath, store := newTestStore(t)
	require.NoError(t, os.WriteFile(credentialsPath, []byte("{not json"), 0o600))

	_, err := store.Credential(context.Background())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitConfig, domainerrors.ExitCodeFor(err))
}
