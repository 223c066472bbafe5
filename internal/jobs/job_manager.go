package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	snapshotSweepJob *SnapshotSweepJob
}

// SweepConfig configures the snapshot sweeper.
type SweepConfig struct {
	Schedule string
	MaxAge   time.Duration
}

func NewJobManager(
	sweepHandler commands.SweepSnapshotsCommandHandler,
	sweep SweepConfig,
	logger *slog.Logger,
	m *metrics.JobMetrics,
) *JobManager {
	return &JobManager{
		snapshotSweepJob: NewSnapshotSweepJob(sweepHandler, sweep.Schedule, sweep.MaxAge, logger, m),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotSweepJob.Stop()
}
