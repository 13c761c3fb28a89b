package main

import (
	"context"
	"log/slog"
	"os"

	"todo/config"
	"todo/internal/cache"
	"todo/internal/delivery"
	"todo/internal/delivery/api"
	apimiddleware "todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"
	"todo/internal/domain/service"
	"todo/internal/infra/auth"
	"todo/internal/infra/backend"
	logs "todo/internal/infra/log"
	"todo/internal/infra/metrics"
	"todo/internal/infra/persistence/rest"
	"todo/internal/infra/persistence/sqlite"
	"todo/internal/infra/realtime"
	"todo/internal/infra/storage"
	"todo/internal/usecase"
	"todo/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newMetrics,
		cache.NewQueryClient,
		backend.NewClient,
		sqlite.New,
	)
}

// newMetrics provides the registry served on /metrics and the recorder fed by
// the backend client, the cache and the todo service.
func newMetrics() (prometheus.Gatherer, service.MetricsRecorder) {
	registry := metrics.NewRegistry()

	return registry, metrics.NewCollector(registry)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSessionRepository,
			rest.NewTodoRepository,
			rest.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenInspector,
			newAuthClient,
		),
		storage.Module,
		realtime.Module,
	)
}

// newAuthClient exposes one auth client as the session backend and as the
// bearer token source of every data call.
func newAuthClient(lc fx.Lifecycle, params backend.AuthClientParams) (service.AuthService, service.TokenSource) {
	client := backend.NewAuthClient(params)
	lc.Append(fx.Hook{
		OnStart: client.Start,
		OnStop:  client.Stop,
	})

	return client, client
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewTodoService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTodoHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSession loads the persisted session once the app starts and releases
// the auth subscription on shutdown.
func startSession(lc fx.Lifecycle, session usecase.SessionUsecase) {
	lc.Append(fx.Hook{
		OnStart: session.Start,
		OnStop:  session.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
