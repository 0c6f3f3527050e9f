package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusProgressionJob drives the automatic order lifecycle.
// Runs every second, applying every scheduled transition whose time has come.
type StatusProgressionJob struct {
	handler commands.ApplyDueTransitionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusProgressionJob creates a new job for applying due status transitions.
// Uses ApplyDueTransitionsCommandHandler to consume the durable schedule every second.
func NewStatusProgressionJob(handler commands.ApplyDueTransitionsCommandHandler, logger *slog.Logger) *StatusProgressionJob {
	return &StatusProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_progression_job"),
	}
}

// Start begins the status progression job to run every second.
func (j *StatusProgressionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewApplyDueTransitionsCommand()

		applied, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status progression job failed", "error", err)
			return
		}

		if applied > 0 {
			j.logger.InfoContext(ctx, "Applied scheduled status transitions", "count", applied)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status progression job started (running every second)")
	return nil
}

// Stop stops the status progression job.
func (j *StatusProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status progression job stopped")
}
