package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bossoq/flood-disaster-crawl/config"
	domainerrors "github.com/bossoq/flood-disaster-crawl/internal/domain/errors"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/catalog"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/credfile"
	logs "github.com/bossoq/flood-disaster-crawl/internal/infra/log"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/msgraph"
	"github.com/bossoq/flood-disaster-crawl/internal/infra/persistence/sqlite"
	"github.com/bossoq/flood-disaster-crawl/internal/usecase"
	"github.com/bossoq/flood-disaster-crawl/internal/usecase/impl"

	"go.uber.org/fx"
)

type runCrawlParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger  *slog.Logger
	Crawler usecase.CrawlUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runCrawl,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewFileRepository,
			credfile.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewClient,
			msgraph.NewTokenClient,
			msgraph.NewChatNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCrawlService,
		),
	)
}

// runCrawl performs a single crawl after the app has started and then triggers
// graceful shutdown so all OnStop hooks run before the process exits.
func runCrawl(ctx context.Context, params runCrawlParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				summary, err := params.Crawler.Run(ctx)
				code := 0
				if err != nil {
					code = domainerrors.ExitCodeFor(err)
					params.Logger.ErrorContext(ctx, "Crawl failed",
						slog.Any("error", err),
						slog.Int("exitCode", code),
					)
				} else {
					params.Logger.InfoContext(ctx, "Crawl finished",
						slog.Int("fetched", summary.Fetched),
						slog.Int("new", summary.New),
						slog.Int("notified", summary.Notified),
					)
				}

				if shutdownErr := params.Shutdown(fx.ExitCode(code)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(domainerrors.ExitGeneric)
				}
			}()

			return nil
		},
	})
}
