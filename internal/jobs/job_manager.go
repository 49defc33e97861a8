package jobs

import (
	"fmt"
	"log/slog"

	"driverops/internal/core/application/usecases/queries"
)

// JobManager owns the lifecycle of every scheduled job so the entrypoint
// starts and stops them as a unit.
type JobManager struct {
	statusAuditJob *StatusAuditJob
}

// NewJobManager wires up all scheduled jobs.
func NewJobManager(
	auditHandler queries.AuditActiveOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusAuditJob: NewStatusAuditJob(auditHandler, logger),
	}
}

// StartAll launches every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.statusAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start status audit job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job and waits for running invocations.
func (jm *JobManager) StopAll() {
	jm.statusAuditJob.Stop()
}
