package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
)

// LeaderJobs holds the roster maintenance jobs.
type LeaderJobs struct {
	leaderSvc leader.Service
}

func NewLeaderJobs(leaderSvc leader.Service) *LeaderJobs {
	return &LeaderJobs{leaderSvc: leaderSvc}
}

func (j *LeaderJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_leader_statuses", 10*time.Minute, j.ReconcileLeaderStatuses)
}

// ReconcileLeaderStatuses reactivates suspended leaders whose return date has
// passed. The same check also runs inline on roster reads, so this job only
// matters for long-idle deployments.
func (j *LeaderJobs) ReconcileLeaderStatuses(ctx context.Context) error {
	changed, err := j.leaderSvc.ReconcileStatuses(ctx)
	if err != nil {
		return err
	}
	if len(changed) > 0 {
		slog.Info("Cron: Reactivated leaders past their return date", "leader_ids", changed)
	}
	return nil
}
