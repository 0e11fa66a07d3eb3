package impl

import (
	"io"
	"log/slog"
	"time"

	"confusion/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(sessionTTL time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			SessionTTL: sessionTTL,
		},
	}
}
