package commands

import (
	"context"
	"time"

	"booking/internal/core/ports"
)

// SweepSnapshotsCommandHandler deletes stale session storage. The snapshot
// sweep job runs it on a schedule.
//
// Example:
//
//	handler := NewSweepSnapshotsCommandHandler(gormkv.NewRepository(db))
//	cmd, _ := NewSweepSnapshotsCommand(30 * 24 * time.Hour)
//	deleted, err := handler.Handle(ctx, cmd)
type SweepSnapshotsCommandHandler struct {
	sweeper ports.StaleSnapshotSweeper
	now     func() time.Time
}

// NewSweepSnapshotsCommandHandler creates the handler over a storage backend.
func NewSweepSnapshotsCommandHandler(sweeper ports.StaleSnapshotSweeper) SweepSnapshotsCommandHandler {
	return SweepSnapshotsCommandHandler{sweeper: sweeper, now: time.Now}
}

// Handle returns the number of deleted entries.
func (h SweepSnapshotsCommandHandler) Handle(ctx context.Context, cmd SweepSnapshotsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.sweeper.DeleteStale(ctx, h.now().Add(-cmd.MaxAge()))
}
