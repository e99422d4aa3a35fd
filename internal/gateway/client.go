// Package gateway talks to the remote complaint-management API. Every
// response arrives in a {success, data, message} envelope; this package
// turns that into (result, error) so callers never inspect success flags.
package gateway

import (
	"context"
	"fmt"

	"civicworks/internal/models"
)

// ListParams are the query parameters for the complaints list.
// Zero-valued optional ids mean "no constraint".
type ListParams struct {
	StatsFilter  string
	Status       string
	Page         int
	Limit        int
	Search       string
	CategoryID   int
	ZoneID       int
	DepartmentID int
}

// StatsParams select the window for an aggregate-stats request.
type StatsParams struct {
	FilterType string
	StartDate  string
	EndDate    string
}

// UpdateStatusParams describe a status transition request.
type UpdateStatusParams struct {
	ComplaintID int
	Status      string
	Comment     string
	Attachments []string
}

// ListResult is the payload of a complaints-list response. FilterOptions and
// Filters are nil when the server omits them.
type ListResult struct {
	Complaints    []models.Complaint     `json:"complaints"`
	Pagination    models.Pagination      `json:"pagination"`
	FilterOptions *models.FilterOptions  `json:"filter_options"`
	Filters       *models.CurrentFilters `json:"filters"`
}

// StatusUpdateResult pairs the history record with the server's success
// message.
type StatusUpdateResult struct {
	Record  models.StatusUpdateRecord
	Message string
}

// Client is the gateway contract the state containers depend on. Tests
// substitute a fake; production wires HTTPClient.
type Client interface {
	ListComplaints(ctx context.Context, p ListParams) (*ListResult, error)
	GetComplaintDetail(ctx context.Context, id string) (*models.ComplaintDetail, error)
	GetStats(ctx context.Context, p StatsParams) (*models.StatsSnapshot, error)
	GetAssignmentOptions(ctx context.Context) (*models.AssignmentOptions, error)
	UpdateComplaintStatus(ctx context.Context, p UpdateStatusParams) (*StatusUpdateResult, error)
	GetProjectStats(ctx context.Context, departmentID int) (*models.ProjectStats, error)
}

// APIError is an application-level failure: the request completed but the
// envelope carried success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api request failed with status %d", e.StatusCode)
}
