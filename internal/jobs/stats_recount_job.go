package jobs

import (
	"context"
	"log/slog"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatsRecountJob periodically recomputes order_count for every menu item
// from the archived order items. The reactive recount after each archival is
// best effort, so this job repairs whatever drift it leaves behind.
type StatsRecountJob struct {
	handler commands.RecountMenuStatsCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsRecountJob creates the reconciliation job. The schedule is a cron
// expression with a seconds field.
func NewStatsRecountJob(
	handler commands.RecountMenuStatsCommandHandler,
	spec string,
	logger *slog.Logger,
) *StatsRecountJob {
	return &StatsRecountJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_recount_job"),
	}
}

// Start schedules the recount on the configured cron expression.
func (j *StatsRecountJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewRecountMenuStatsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Menu stats recount failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu stats recount job started", "schedule", j.spec)
	return nil
}

// Stop stops the recount job.
func (j *StatsRecountJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu stats recount job stopped")
}
