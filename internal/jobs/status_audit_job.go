package jobs

import (
	"context"
	"log/slog"
	"time"

	"driverops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusAuditJob periodically scans active order rows for data-quality
// problems: deprecated status values, statuses that had to be inferred or
// cannot be resolved, and orders past their estimated delivery time.
// Findings are logged; the job never mutates order state.
type StatusAuditJob struct {
	handler queries.AuditActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusAuditJob creates a new audit job running every 30 seconds.
func NewStatusAuditJob(handler queries.AuditActiveOrdersQueryHandler, logger *slog.Logger) *StatusAuditJob {
	return &StatusAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_audit_job"),
	}
}

// Start begins the audit job.
func (j *StatusAuditJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewAuditActiveOrdersQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Status audit query construction failed", "error", err)
			return
		}

		findings, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status audit job failed", "error", err)
			return
		}

		for _, finding := range findings {
			j.logger.WarnContext(ctx, "Status audit finding",
				"order_id", finding.OrderID,
				"kind", string(finding.Kind),
				"raw_status", finding.RawStatus,
				"detail", finding.Detail,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status audit job started (running every 30 seconds)")
	return nil
}

// Stop stops the audit job.
func (j *StatusAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status audit job stopped")
}
