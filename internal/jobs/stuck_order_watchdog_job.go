package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderintake/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StuckOrderWatchdogJob periodically scans for orders that entered processing
// but never reached a terminal state, which happens when a worker crashes
// mid-pipeline. The job is observational: it logs a warning per stuck order
// and leaves recovery to an operator.
type StuckOrderWatchdogJob struct {
	handler   queries.GetStuckOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStuckOrderWatchdogJob creates a watchdog that flags orders stuck in
// processing longer than the threshold.
func NewStuckOrderWatchdogJob(
	handler queries.GetStuckOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StuckOrderWatchdogJob {
	return &StuckOrderWatchdogJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stuck_order_watchdog_job"),
	}
}

// Start begins the watchdog scan, running every 30 seconds.
func (j *StuckOrderWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStuckOrdersQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stuck order watchdog misconfigured", "error", queryErr)
			return
		}

		stuck, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stuck order scan failed", "error", handleErr)
			return
		}

		for _, resp := range stuck {
			j.logger.WarnContext(ctx, "Order stuck in processing",
				"order_id", resp.OrderID,
				"vendor_id", resp.VendorID.String(),
				"last_update", resp.UpdatedAt)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stuck order watchdog started (running every 30 seconds)", "threshold", j.threshold)
	return nil
}

// Stop stops the watchdog.
func (j *StuckOrderWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order watchdog stopped")
}
