package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

func TestStatusUpdateSuccess(t *testing.T) {
	fake := &fakeGateway{}
	fake.updateFn = func(ctx context.Context, p gateway.UpdateStatusParams) (*gateway.StatusUpdateResult, error) {
		assert.Equal(t, 17, p.ComplaintID)
		assert.Equal(t, models.StatusInProgress, p.Status)
		return &gateway.StatusUpdateResult{
			Record: models.StatusUpdateRecord{
				HistoryID:      42,
				PreviousStatus: models.StatusRef{Value: "submitted", Label: "Submitted"},
				NewStatus:      models.StatusRef{Value: "in_progress", Label: "In Progress"},
				Comment:        "Crew dispatched",
			},
			Message: "Status updated successfully",
		}, nil
	}

	s := NewStatusUpdates(fake, zap.NewNop())
	var sawLoading bool
	unsub := s.Subscribe(func() {
		if s.State().Loading {
			sawLoading = true
		}
	})
	defer unsub()

	s.Update(context.Background(), UpdateStatusParams{
		ComplaintID: 17,
		Status:      models.StatusInProgress,
		Comment:     "Crew dispatched",
	})

	state := s.State()
	assert.True(t, sawLoading)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.LastUpdate)
	assert.Equal(t, "submitted", state.LastUpdate.PreviousStatus.Value)
	assert.Equal(t, "in_progress", state.LastUpdate.NewStatus.Value)
	assert.Equal(t, "Status updated successfully", state.SuccessMessage)
}

func TestStatusUpdateSuccessMessageFallback(t *testing.T) {
	fake := &fakeGateway{}
	fake.updateFn = func(ctx context.Context, p gateway.UpdateStatusParams) (*gateway.StatusUpdateResult, error) {
		return &gateway.StatusUpdateResult{Record: models.StatusUpdateRecord{HistoryID: 1}}, nil
	}

	s := NewStatusUpdates(fake, zap.NewNop())
	s.Update(context.Background(), UpdateStatusParams{ComplaintID: 1, Status: models.StatusClosed})

	assert.Equal(t, "Complaint status updated", s.State().SuccessMessage)
}

func TestStatusUpdateFailureKeepsLastRecord(t *testing.T) {
	fake := &fakeGateway{}
	fake.updateFn = func(ctx context.Context, p gateway.UpdateStatusParams) (*gateway.StatusUpdateResult, error) {
		return &gateway.StatusUpdateResult{
			Record:  models.StatusUpdateRecord{HistoryID: 7},
			Message: "done",
		}, nil
	}
	s := NewStatusUpdates(fake, zap.NewNop())
	s.Update(context.Background(), UpdateStatusParams{ComplaintID: 1, Status: models.StatusAssigned})
	require.NotNil(t, s.State().LastUpdate)

	fake.updateFn = func(ctx context.Context, p gateway.UpdateStatusParams) (*gateway.StatusUpdateResult, error) {
		return nil, &gateway.APIError{StatusCode: 409, Message: "Complaint already closed"}
	}
	s.Update(context.Background(), UpdateStatusParams{ComplaintID: 1, Status: models.StatusClosed})

	state := s.State()
	assert.Equal(t, "Complaint already closed", state.Error)
	assert.Empty(t, state.SuccessMessage, "a failed attempt must not leave a success message")
	require.NotNil(t, state.LastUpdate, "previous record stays visible after a failure")
	assert.Equal(t, 7, state.LastUpdate.HistoryID)
}

func TestStatusUpdateClear(t *testing.T) {
	fake := &fakeGateway{}
	fake.updateFn = func(ctx context.Context, p gateway.UpdateStatusParams) (*gateway.StatusUpdateResult, error) {
		return &gateway.StatusUpdateResult{Record: models.StatusUpdateRecord{HistoryID: 3}, Message: "ok"}, nil
	}
	s := NewStatusUpdates(fake, zap.NewNop())
	s.Update(context.Background(), UpdateStatusParams{ComplaintID: 2, Status: models.StatusReopened})
	require.NotNil(t, s.State().LastUpdate)

	s.Clear()
	assert.Equal(t, StatusUpdatesState{}, s.State())
}
