package realtime

import (
	"context"
	"log/slog"

	"todo/config"
	"todo/internal/domain/entity"
	"todo/internal/domain/service"

	"go.uber.org/fx"
)

// noopRealtime is used when realtime is disabled; views then rely on
// invalidation alone.
type noopRealtime struct {
	logger *slog.Logger
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() error { return nil }

func (r *noopRealtime) Subscribe(_ context.Context, table string, _ service.ChangeHandler) (service.Subscription, error) {
	r.logger.Debug("[NoopRealtime] Realtime disabled, skipping subscription", slog.String("table", table))

	return noopSubscription{}, nil
}

// Params holds dependencies for the RealtimeService, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Tokens service.TokenSource
	Auth   service.AuthService `optional:"true"`
	Logger *slog.Logger
}

// New creates the RealtimeService based on configuration. Refreshed access
// tokens are pushed to joined channels.
func New(params Params) service.RealtimeService {
	logger := params.Logger

	if cfg := params.Config.Realtime; cfg == nil || !cfg.Enabled {
		logger.Info("Realtime disabled, using no-op subscriptions")

		return &noopRealtime{logger: logger}
	}

	client := NewClient(params.Config, params.Tokens, logger)

	unsubscribe := func() {}
	if params.Auth != nil {
		unsubscribe = params.Auth.OnAuthStateChange(func(event entity.AuthEvent, session *entity.Session) {
			if session == nil {
				return
			}
			if event == entity.AuthEventTokenRefreshed || event == entity.AuthEventSignedIn {
				client.PushAccessToken(context.Background(), session.AccessToken)
			}
		})
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing realtime socket")
			unsubscribe()

			return client.Close(ctx)
		},
	})

	return client
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
