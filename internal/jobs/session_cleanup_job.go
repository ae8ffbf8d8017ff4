package jobs

import (
	"context"
	"log/slog"
	"time"

	"mapsession/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob periodically removes sessions that went idle past the
// configured limit. Sessions hold no durable state, so an expired session
// is simply forgotten and the client starts a fresh one.
type SessionCleanupJob struct {
	handler commands.ExpireSessionsCommandHandler
	maxIdle time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionCleanupJob creates a cleanup job removing sessions idle for
// longer than maxIdle.
func NewSessionCleanupJob(
	handler commands.ExpireSessionsCommandHandler,
	maxIdle time.Duration,
	logger *slog.Logger,
) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler: handler,
		maxIdle: maxIdle,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the cleanup job to run every 30 seconds.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireSessionsCommand(j.maxIdle)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup command is invalid", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired idle sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every 30 seconds)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
