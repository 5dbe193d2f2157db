package workers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/store"
)

const defaultPurgeInterval = time.Hour

// codePurgeWorker periodically deletes expired verification codes so that
// abandoned password-reset and email-change flows do not accumulate rows.
type codePurgeWorker struct {
	codes    store.CodeRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewCodePurgeWorker creates a worker that purges expired verification
// codes on the interval from cfg. A non-positive interval falls back to
// the built-in default of one hour.
func NewCodePurgeWorker(codes store.CodeRepository, cfg config.Workers, log *logger.Logger) Worker {
	interval := cfg.PurgeInterval
	if interval <= 0 {
		interval = defaultPurgeInterval
	}

	workerLogger := log.GetChildLogger()
	workerLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "code-purge")
	})

	return &codePurgeWorker{
		codes:    codes,
		interval: interval,
		logger:   workerLogger,
	}
}

// Run starts the purge loop in a background goroutine. The loop stops
// when ctx is cancelled.
func (w *codePurgeWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("verification code purge worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("verification code purge worker stopped")
				return
			case <-ticker.C:
				w.purge(ctx)
			}
		}
	}()
}

func (w *codePurgeWorker) purge(ctx context.Context) {
	purged, err := w.codes.PurgeExpired(ctx, time.Now())
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to purge expired verification codes")
		return
	}
	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("expired verification codes purged")
	}
}
