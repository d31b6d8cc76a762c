package msgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile() *entity.FileDetail {
	return &entity.FileDetail{
		ID:           "10971",
		Subject:      "Flood Notice A",
		LinkDownload: "https://x/a.pdf",
	}
}

func newTestNotifier(t *testing.T, handler http.HandlerFunc) *chatNotifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &chatNotifier{
		host:       server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     discardLogger(),
	}
}

func TestChatNotifier_SendFileNotification(t *testing.T) {
	var received chatMessage

	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.0/chats/19:meeting/messages", r.URL.Path)
		assert.Equal(t, "Bearer fresh-access", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})

	credential := &entity.Credential{AccessToken: "fresh-access"}
	err := n.SendFileNotification(context.Background(), testSecrets(), credential, testFile())
	require.NoError(t, err)

	assert.Equal(t, "html", received.Body.ContentType)
	require.Len(t, received.Attachments, 1)

	attachment := received.Attachments[0]
	_, err = uuid.Parse(attachment.ID)
	assert.NoError(t, err, "attachment id should be a fresh uuid")
	assert.Contains(t, received.Body.Content, attachment.ID)
	assert.Equal(t, thumbnailCardContentType, attachment.ContentType)
	assert.Equal(t, "https://x/a.pdf", attachment.ContentURL)
	assert.Equal(t, "Flood Notice A", attachment.Name)

	var card thumbnailCard
	require.NoError(t, json.Unmarshal([]byte(attachment.Content), &card))
	assert.Equal(t, cardTitle, card.Title)
	assert.Equal(t, "Flood Notice A", card.Subtitle)
	assert.Equal(t, cardText, card.Text)
	require.Len(t, card.Buttons, 1)
	assert.Equal(t, "openUrl", card.Buttons[0].Type)
	assert.Equal(t, "Download", card.Buttons[0].Title)
	assert.Equal(t, "https://x/a.pdf", card.Buttons[0].Value)
}

func TestChatNotifier_FreshAttachmentIDPerMessage(t *testing.T) {
	first, err := buildChatMessage(testFile())
	require.NoError(t, err)
	second, err := buildChatMessage(testFile())
	require.NoError(t, err)

	assert.NotEqual(t, first.Attachments[0].ID, second.Attachments[0].ID)
}

func TestChatNotifier_GraphRejects(t *testing.T) {
	n := newTestNotifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"InvalidAuthenticationToken"}}`))
	})

	credential := &entity.Credential{AccessToken: "stale"}
	err := n.SendFileNotification(context.Background(), testSecrets(), credential, testFile())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitNotify, domainerrors.ExitCodeFor(err))
}

func TestChatNotifier_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	n := &chatNotifier{
		host:       server.URL,
		httpClient: &http.Client{Timeout: time.Second},
		logger:     discardLogger(),
	}

	err := n.SendFileNotification(context.Background(), testSecrets(), &entity.Credential{}, testFile())
	require.Error(t, err)
	assert.Equal(t, domainerrors.ExitNotify, domainerrors.ExitCodeFor(err))
}
