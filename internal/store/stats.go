package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// StatsState is a snapshot of the aggregate-stats container.
type StatsState struct {
	Loading  bool
	Error    string
	Snapshot *models.StatsSnapshot
}

// Stats holds the dashboard's aggregate-stats snapshot.
type Stats struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state StatsState
	notifier
}

// NewStats creates an empty stats container.
func NewStats(gw gateway.Client, logger *zap.Logger) *Stats {
	return &Stats{gw: gw, logger: logger}
}

// FetchStatsParams select the stats window.
type FetchStatsParams struct {
	FilterType string
	StartDate  string
	EndDate    string
}

// Fetch loads the stats snapshot for the given window.
func (s *Stats) Fetch(ctx context.Context, p FetchStatsParams) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()

	snapshot, err := s.gw.GetStats(ctx, gateway.StatsParams{
		FilterType: p.FilterType,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
	})
	if err != nil {
		s.logger.Warn("stats fetch failed", zap.String("filter", p.FilterType), zap.Error(err))
		s.mu.Lock()
		s.state.Loading = false
		s.state.Error = errorMessage(err, "Failed to fetch stats")
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.Snapshot = snapshot
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container.
func (s *Stats) Clear() {
	s.mu.Lock()
	s.state = StatsState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot.
func (s *Stats) State() StatsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OverviewTotal returns the overview grand total, 0 before the first fetch.
func (s *Stats) OverviewTotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Snapshot == nil {
		return 0
	}
	return s.state.Snapshot.Overview.Total
}
