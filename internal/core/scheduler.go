package core

// scheduler.go provides background maintenance of stored results.
//
// Stored results are dropped once they are older than the retention period.
// The janitor is long-running and context-aware for graceful shutdown.

import (
	"context"
	"log/slog"
	"time"
)

// RetentionConfig holds configuration for the result janitor.
// Zero values fall back to the defaults.
type RetentionConfig struct {
	MaxAge        time.Duration // How long results are kept (default: 1h)
	CheckInterval time.Duration // How often to prune (default: 5m)
}

func (c RetentionConfig) withDefaults() RetentionConfig {
	if c.MaxAge <= 0 {
		c.MaxAge = time.Hour
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = 5 * time.Minute
	}
	return c
}

// StartResultJanitor prunes stored results every CheckInterval until ctx is
// cancelled. It blocks; run it in its own goroutine.
func (s *Service) StartResultJanitor(ctx context.Context, cfg RetentionConfig) {
	cfg = cfg.withDefaults()
	slog.Info("result janitor started", "max_age", cfg.MaxAge, "interval", cfg.CheckInterval)

	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("result janitor stopped")
			return
		case <-ticker.C:
			if n := s.pruneResults(time.Now().Add(-cfg.MaxAge)); n > 0 {
				slog.Debug("pruned stored results", "removed", n)
			}
		}
	}
}
