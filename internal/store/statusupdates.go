package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// StatusUpdatesState is a snapshot of the status-update mutation container.
type StatusUpdatesState struct {
	Loading        bool
	Error          string
	LastUpdate     *models.StatusUpdateRecord
	SuccessMessage string
}

// StatusUpdates tracks the most recent status-transition mutation.
type StatusUpdates struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state StatusUpdatesState
	notifier
}

// NewStatusUpdates creates an empty status-update container.
func NewStatusUpdates(gw gateway.Client, logger *zap.Logger) *StatusUpdates {
	return &StatusUpdates{gw: gw, logger: logger}
}

// UpdateStatusParams describe one status transition.
type UpdateStatusParams struct {
	ComplaintID int
	Status      string
	Comment     string
	Attachments []string
}

// Update runs the mutation action. A previous record stays visible when a
// later update fails, same as the fetch containers.
func (s *StatusUpdates) Update(ctx context.Context, p UpdateStatusParams) {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.state.SuccessMessage = ""
	s.mu.Unlock()
	s.notify()

	result, err := s.gw.UpdateComplaintStatus(ctx, gateway.UpdateStatusParams{
		ComplaintID: p.ComplaintID,
		Status:      p.Status,
		Comment:     p.Comment,
		Attachments: p.Attachments,
	})
	if err != nil {
		s.logger.Warn("status update failed",
			zap.Int("complaint_id", p.ComplaintID),
			zap.String("target", p.Status),
			zap.Error(err),
		)
		s.mu.Lock()
		s.state.Loading = false
		s.state.Error = errorMessage(err, "Failed to update complaint status")
		s.mu.Unlock()
		s.notify()
		return
	}

	msg := result.Message
	if msg == "" {
		msg = "Complaint status updated"
	}
	s.mu.Lock()
	s.state.Loading = false
	s.state.LastUpdate = &result.Record
	s.state.SuccessMessage = msg
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container, typically after the screen has shown the
// success toast.
func (s *StatusUpdates) Clear() {
	s.mu.Lock()
	s.state = StatusUpdatesState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot.
func (s *StatusUpdates) State() StatusUpdatesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
