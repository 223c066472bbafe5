package jobs

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const (
	SnapshotSweepJobName = "snapshot_sweep"

	DefaultSweepSchedule = "@hourly"
	DefaultSweepMaxAge   = 30 * 24 * time.Hour
)

// SnapshotSweepJob deletes cart storage of sessions that have been idle for
// longer than maxAge.
type SnapshotSweepJob struct {
	handler  commands.SweepSnapshotsCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
	metrics  *metrics.JobMetrics
}

// NewSnapshotSweepJob creates the sweeper. Empty schedule and non-positive
// maxAge fall back to DefaultSweepSchedule and DefaultSweepMaxAge.
func NewSnapshotSweepJob(
	handler commands.SweepSnapshotsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
	m *metrics.JobMetrics,
) *SnapshotSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if maxAge <= 0 {
		maxAge = DefaultSweepMaxAge
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotSweepJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "snapshot_sweep_job"),
		metrics:  m,
	}
}

// Start registers the sweep on its schedule and starts the scheduler.
func (j *SnapshotSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot sweep job started",
		"schedule", j.schedule,
		"max_age", j.maxAge.String(),
	)
	return nil
}

// RunOnce performs a single sweep and returns the number of deleted entries.
func (j *SnapshotSweepJob) RunOnce(ctx context.Context) (int64, error) {
	started := time.Now()
	defer func() {
		j.metrics.ObserveDuration(SnapshotSweepJobName, time.Since(started))
	}()

	cmd, err := commands.NewSweepSnapshotsCommand(j.maxAge)
	if err != nil {
		j.metrics.IncFailure(SnapshotSweepJobName)
		return 0, err
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.metrics.IncFailure(SnapshotSweepJobName)
		j.logger.ErrorContext(ctx, "Snapshot sweep failed", "error", err)
		return 0, err
	}

	j.metrics.IncSuccess(SnapshotSweepJobName)
	j.metrics.AddSwept(deleted)
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Stale cart storage removed", "deleted", deleted)
	}
	return deleted, nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SnapshotSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot sweep job stopped")
}
