// Package catalog implements the remote file-listing client.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/bossoq/flood-disaster-crawl/config"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/entity"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/domain/service"

	"go.uber.org/fx"
)

// listEnvelope mirrors the catalog's response shape. Pointer fields let a
// missing envelope level be told apart from an empty listing.
type listEnvelope struct {
	Data *struct {
		FileList *[]entity.FileDetail `json:"file_list"`
	} `json:"data"`
}

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient is the constructor for the catalog client.
func NewClient(params Params) service.CatalogService {
	return &client{
		endpoint: params.Config.Catalog.Endpoint,
		httpClient: &http.Client{
			Timeout: params.Config.Catalog.Timeout,
		},
		logger: params.Logger,
	}
}

// ListFiles fetches the full listing in one request.
func (c *client) ListFiles(ctx context.Context) ([]entity.FileDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, domainerrors.ErrRemoteFetch.WrapMessage("building catalog request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrRemoteFetch.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrRemoteFetch.WrapMessage("reading catalog response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerrors.ErrRemoteFetch.WrapMessage(resp.Status)
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage(err.Error())
	}

	if envelope.Data == nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("no data field")
	}
	if envelope.Data.FileList == nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("no file_list field")
	}

	files := *envelope.Data.FileList
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Catalog listing fetched",
		slog.Int("count", len(files)),
	)

	return files, nil
}
