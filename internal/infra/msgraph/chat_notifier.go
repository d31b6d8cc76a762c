package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bossoq/flood-disaster-crawl/config"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	thumbnailCardContentType = "application/vnd.microsoft.card.thumbnail"

	cardTitle = "[New] การประกาศเขตอุทกภัย"
	cardText  = "Click the link below to download the file"
)

// chatMessage is the Graph chat-message payload: an HTML body referencing a
// single inline attachment that carries the thumbnail card.
type chatMessage struct {
	Body        chatMessageBody  `json:"body"`
	Attachments []chatAttachment `json:"attachments"`
}

type chatMessageBody struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

type chatAttachment struct {
	ID          string `json:"id"`
	ContentType string `json:"contentType"`
	ContentURL  string `json:"contentUrl"`
	Name        string `json:"name"`
	Content     string `json:"content"`
}

type thumbnailCard struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Text     string       `json:"text"`
	Buttons  []cardButton `json:"buttons"`
}

type cardButton struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type chatNotifier struct {
	host       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NotifierParams defines the required parameters
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChatNotifier is the constructor for the Graph chat notifier.
func NewChatNotifier(params NotifierParams) service.NotificationService {
	return &chatNotifier{
		host: params.Config.Graph.Host,
		httpClient: &http.Client{
			Timeout: params.Config.Graph.Timeout,
		},
		logger: params.Logger,
	}
}

// SendFileNotification posts one chat message carrying the file's download
// link as a thumbnail card.
func (n *chatNotifier) SendFileNotification(ctx context.Context, secrets *entity.Secrets, credential *entity.Credential, file *entity.FileDetail) error {
	message, err := buildChatMessage(file)
	if err != nil {
		return domainerrors.ErrNotify.WrapMessage("building chat message")
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return domainerrors.ErrNotify.WrapMessage("encoding chat message")
	}

	endpoint := fmt.Sprintf("%s/v1.0/chats/%s/messages", strings.TrimSuffix(n.host, "/"), secrets.ChatID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domainerrors.ErrNotify.WrapMessage("building chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential.AccessToken)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrNotify.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.ErrNotify.WrapMessage("reading chat response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		n.logger.LogAttrs(ctx, slog.LevelError, "Graph rejected chat message",
			slog.String("status", resp.Status),
			slog.String("fileId", file.ID),
		)

		return domainerrors.ErrNotify.WrapMessage(resp.Status)
	}

	n.logger.LogAttrs(ctx, slog.LevelDebug, "Chat message accepted",
		slog.String("fileId", file.ID),
		slog.Int("responseBytes", len(body)),
	)

	return nil
}

// buildChatMessage assembles the message for one file. The attachment id is
// freshly generated and must match the reference inside the HTML body.
func buildChatMessage(file *entity.FileDetail) (*chatMessage, error) {
	attachmentID := uuid.NewString()

	card := thumbnailCard{
		Title:    cardTitle,
		Subtitle: file.Subject,
		Text:     cardText,
		Buttons: []cardButton{
			{
				Type:  "openUrl",
				Title: "Download",
				Value: file.LinkDownload,
			},
		},
	}

	cardJSON, err := json.Marshal(card)
	if err != nil {
		return nil, err
	}

	return &chatMessage{
		Body: chatMessageBody{
			Content:     fmt.Sprintf("<attachment id=%q></attachment>", attachmentID),
			ContentType: "html",
		},
		Attachments: []chatAttachment{
			{
				ID:          attachmentID,
				ContentType: thumbnailCardContentType,
				ContentURL:  file.LinkDownload,
				Name:        file.Subject,
				Content:     string(cardJSON),
			},
		},
	}, nil
}
