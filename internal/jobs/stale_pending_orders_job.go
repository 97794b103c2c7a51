package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StalePendingOrdersJob periodically scans for orders that have been sitting
// in Pending longer than maxAge and logs them. The sweep is read-only: it
// never mutates order state, it only gives operators a signal that an order
// needs attention.
type StalePendingOrdersJob struct {
	db     *gorm.DB
	maxAge time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStalePendingOrdersJob creates an hourly job reporting orders stuck in
// Pending for longer than maxAge.
func NewStalePendingOrdersJob(db *gorm.DB, maxAge time.Duration, logger *slog.Logger) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		db:     db,
		maxAge: maxAge,
		cron:   cron.New(),
		logger: logger.With("component", "stale_pending_orders_job"),
	}
}

// Start begins the hourly sweep.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale pending orders job started (running hourly)", "max_age", j.maxAge.String())
	return nil
}

// Stop stops the sweep.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}

type staleOrderRow struct {
	ID           string
	CustomerName string
	CreatedAt    time.Time
}

func (j *StalePendingOrdersJob) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	var rows []staleOrderRow
	err := j.db.WithContext(ctx).Raw(
		`SELECT id, customer_name, created_at
		   FROM orders
		  WHERE status = ? AND created_at < ?
		  ORDER BY created_at`,
		"Pending", cutoff,
	).Scan(&rows).Error
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending orders sweep failed", "error", err)
		return
	}

	if len(rows) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Orders stuck in Pending", "count", len(rows))
	for _, row := range rows {
		j.logger.WarnContext(ctx, "Stale pending order",
			"order_id", row.ID,
			"customer", row.CustomerName,
			"age", time.Since(row.CreatedAt).Round(time.Minute).String(),
		)
	}
}
