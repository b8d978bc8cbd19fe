package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"quill-server/internal/config"
	"quill-server/internal/domain/session"
	"quill-server/internal/infrastructure/logger"
	"quill-server/internal/infrastructure/metrics"
)

const DefaultSweepIntervalMinutes = 5

// Crontab runs the periodic housekeeping jobs: idle-session eviction
// and config reload.
type Crontab struct {
	ctab     *crontab.Crontab
	registry *session.Registry
}

func NewCrontab(registry *session.Registry) *Crontab {
	return &Crontab{
		ctab:     crontab.New(),
		registry: registry,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.WithComponent("crontab")

	cfg := config.GetGlobal()
	if cfg == nil || !cfg.SessionSweepDisabled {
		interval := DefaultSweepIntervalMinutes
		if cfg != nil && cfg.SessionSweepMinutes > 0 {
			interval = cfg.SessionSweepMinutes
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, c.sweepIdleSessions); err != nil {
			return fmt.Errorf("add session sweep job: %w", err)
		}
		log.Info().Msgf("Session sweep scheduled: every %d minute(s)", interval)
	}

	// Reload env so log level and provider key rotation take effect
	// without a restart.
	if err := c.ctab.AddJob("* * * * *", func() {
		if _, err := config.Load(); err != nil {
			log.Error().Err(err).Msg("config reload failed")
		}
	}); err != nil {
		return fmt.Errorf("add env reload job: %w", err)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) sweepIdleSessions() {
	start := time.Now()
	removed := c.registry.SweepIdle()
	metrics.SessionsEvictedTotal.Add(float64(removed))
	metrics.SessionsLive.Set(float64(c.registry.Count()))

	if removed > 0 {
		log := logger.WithComponent("crontab")
		log.Info().
			Int("evicted", removed).
			Dur("took", time.Since(start)).
			Msg("session sweep complete")
	}
}
