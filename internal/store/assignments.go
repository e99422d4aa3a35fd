package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// AssignmentsState is a snapshot of the assignment-options container.
type AssignmentsState struct {
	Loading bool
	Error   string
	Options *models.AssignmentOptions
}

// Assignments holds the reference lists the assignment sheet needs.
type Assignments struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state AssignmentsState
	notifier
}

// NewAssignments creates an empty assignment-options container.
func NewAssignments(gw gateway.Client, logger *zap.Logger) *Assignments {
	return &Assignments{gw: gw, logger: logger}
}

// Fetch loads the assignment reference lists.
func (s *Assignments) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()

	options, err := s.gw.GetAssignmentOptions(ctx)
	if err != nil {
		s.logger.Warn("assignment options fetch failed", zap.Error(err))
		s.mu.Lock()
		s.state.Loading = false
		s.state.Error = errorMessage(err, "Failed to fetch assignment options")
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.state.Loading = false
	s.state.Options = options
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container.
func (s *Assignments) Clear() {
	s.mu.Lock()
	s.state = AssignmentsState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot.
func (s *Assignments) State() AssignmentsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SubDivisionsFor returns the subdivisions belonging to a division, for
// cascading selection. Empty before the first successful fetch.
func (s *Assignments) SubDivisionsFor(divisionID int) []models.SubDivision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Options == nil {
		return nil
	}
	var out []models.SubDivision
	for _, sd := range s.state.Options.SubDivisions {
		if sd.DivisionID == divisionID {
			out = append(out, sd)
		}
	}
	return out
}

// UsersFor returns the assignable users scoped to a department and,
// when designationID is non-zero, a designation.
func (s *Assignments) UsersFor(departmentID, designationID int) []models.AssignableUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Options == nil {
		return nil
	}
	var out []models.AssignableUser
	for _, u := range s.state.Options.Users {
		if u.DepartmentID != departmentID {
			continue
		}
		if designationID != 0 && u.DesignationID != designationID {
			continue
		}
		out = append(out, u)
	}
	return out
}
