// Package refresh keeps the list and stats containers warm by re-running
// their fetch actions on a fixed interval. Pull-based polling only; the
// system has no push channel.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"civicworks/internal/config"
	"civicworks/internal/store"
)

// Start schedules the periodic refresh and returns the running cron so the
// caller can stop it on shutdown.
func Start(cfg config.Config, st *store.Stores, logger *zap.Logger) *cron.Cron {
	c := cron.New()
	spec := fmt.Sprintf("@every %dm", cfg.RefreshIntervalMinutes)
	_, err := c.AddFunc(spec, func() {
		RunOnce(context.Background(), cfg, st, logger)
	})
	if err != nil {
		// Only reachable with a malformed spec, which the interval
		// validation in config rules out.
		logger.Error("refresh schedule rejected", zap.String("spec", spec), zap.Error(err))
		return c
	}
	c.Start()
	logger.Info("refresh scheduled", zap.Int("interval_minutes", cfg.RefreshIntervalMinutes))
	return c
}

// RunOnce refreshes the complaints list (first page, fresh query) and the
// stats snapshot, then logs where the containers ended up. Failures stay in
// the containers' error fields; they never abort the schedule.
func RunOnce(ctx context.Context, cfg config.Config, st *store.Stores, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.APITimeoutSeconds+5)*time.Second)
	defer cancel()

	st.Complaints.Fetch(ctx, store.FetchComplaintsParams{
		StatsFilter: cfg.StatsFilter,
		Status:      cfg.StatusFilter,
		Page:        1,
		Limit:       cfg.PageSize,
	})
	st.Stats.Fetch(ctx, store.FetchStatsParams{FilterType: cfg.StatsFilter})

	complaints := st.Complaints.State()
	stats := st.Stats.State()
	logger.Info("refresh complete",
		zap.Int("complaints", len(complaints.Complaints)),
		zap.Bool("has_next", complaints.Pagination.HasNext),
		zap.String("complaints_error", complaints.Error),
		zap.Int("stats_total", st.Stats.OverviewTotal()),
		zap.String("stats_error", stats.Error),
	)
}
