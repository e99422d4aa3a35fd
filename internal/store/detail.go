package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// DetailState is a snapshot of the complaint-detail container.
type DetailState struct {
	Loading     bool
	Error       string
	ComplaintID string
	Detail      *models.ComplaintDetail
}

// Detail holds the most recently fetched complaint detail record.
type Detail struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state DetailState
	notifier
}

// NewDetail creates an empty detail container.
func NewDetail(gw gateway.Client, logger *zap.Logger) *Detail {
	return &Detail{gw: gw, logger: logger}
}

// Fetch loads the detail record for one complaint id.
func (s *Detail) Fetch(ctx context.Context, id string) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.state.ComplaintID = id
	s.mu.Unlock()
	s.notify()

	detail, err := s.gw.GetComplaintDetail(ctx, id)
	if err != nil {
		s.logger.Warn("complaint detail fetch failed", zap.String("id", id), zap.Error(err))
		s.mu.Lock()
		s.state.Loading = false
		s.state.Error = errorMessage(err, "Failed to fetch complaint details")
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.Detail = detail
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container, e.g. when leaving the detail screen.
func (s *Detail) Clear() {
	s.mu.Lock()
	s.state = DetailState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot.
func (s *Detail) State() DetailState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CanAssign reports the server-computed assign permission for the loaded
// detail, false while nothing is loaded.
func (s *Detail) CanAssign() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Detail != nil && s.state.Detail.CanAssign
}
