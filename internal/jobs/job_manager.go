package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsRecountJob *StatsRecountJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	recountHandler commands.RecountMenuStatsCommandHandler,
	recountSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsRecountJob: NewStatsRecountJob(recountHandler, recountSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsRecountJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats recount job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRecountJob.Stop()
}
