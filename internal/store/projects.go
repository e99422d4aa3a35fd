package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// ProjectsState is a snapshot of the project-stats container. Stats
// accumulate per department id across fetches.
type ProjectsState struct {
	Loading bool
	Error   string
	Stats   map[int]models.ProjectStats
}

// Projects holds project-count summaries keyed by department id.
type Projects struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state ProjectsState
	notifier
}

// NewProjects creates an empty project-stats container.
func NewProjects(gw gateway.Client, logger *zap.Logger) *Projects {
	return &Projects{gw: gw, logger: logger}
}

// Fetch loads the project summary for one department.
func (s *Projects) Fetch(ctx context.Context, departmentID int) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()

	stats, err := s.gw.GetProjectStats(ctx, departmentID)
	if err != nil {
		s.logger.Warn("project stats fetch failed", zap.Int("department_id", departmentID), zap.Error(err))
		s.mu.Lock()
		s.state.Loading = false
		s.state.Error = errorMessage(err, "Failed to fetch project stats")
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.state.Loading = false
	if s.state.Stats == nil {
		s.state.Stats = make(map[int]models.ProjectStats)
	}
	s.state.Stats[departmentID] = *stats
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container.
func (s *Projects) Clear() {
	s.mu.Lock()
	s.state = ProjectsState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot. The stats map is copied so
// readers cannot observe later mutations.
func (s *Projects) State() ProjectsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.state
	if s.state.Stats != nil {
		snap.Stats = make(map[int]models.ProjectStats, len(s.state.Stats))
		for k, v := range s.state.Stats {
			snap.Stats[k] = v
		}
	}
	return snap
}

// For returns the stored summary for a department, if any.
func (s *Projects) For(departmentID int) (models.ProjectStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.state.Stats[departmentID]
	return stats, ok
}
