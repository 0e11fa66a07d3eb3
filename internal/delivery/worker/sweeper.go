// Package worker hosts background deliveries that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"confusion/config"
	"confusion/internal/delivery"
	"confusion/internal/usecase"
)

// sessionSweeper periodically purges expired session records. Expired
// sessions already fail to resolve; the sweep only keeps the table from
// accumulating dead rows.
type sessionSweeper struct {
	sessionUC usecase.SessionUsecase
	interval  time.Duration
	logger    *slog.Logger
	stop      chan struct{}
}

// SweeperParams holds dependencies for the session sweeper.
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// NewSessionSweeper creates the background session sweeper delivery.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := &sessionSweeper{
		sessionUC: params.SessionUC,
		interval:  params.Config.Auth.SweepInterval,
		logger:    params.Logger,
		stop:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(sweeper.stop)

			return nil
		},
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the context is cancelled or the
// application stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			if _, err := s.sessionUC.PurgeExpired(ctx); err != nil {
				s.logger.Error("Session sweep failed", slog.Any("error", err))
			}
		}
	}
}
