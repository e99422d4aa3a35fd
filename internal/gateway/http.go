package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"civicworks/internal/models"
)

// envelope is the wire wrapper every endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// HTTPClient implements Client against the real API.
type HTTPClient struct {
	rc     *resty.Client
	logger *zap.Logger
}

// New creates an HTTPClient for the given base URL. Retries stay disabled:
// the containers above this layer expect exactly one terminal outcome per
// action.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{rc: rc, logger: logger}
}

// do executes one request and unwraps the envelope into out. It returns the
// envelope message so mutation callers can surface the server's success text.
// Missing or empty data is not an error; out keeps its zero value.
func (c *HTTPClient) do(ctx context.Context, method, path string, query map[string]string, body any, out any) (string, error) {
	req := c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return "", fmt.Errorf("parsing %s response: %w", path, err)
	}

	if !env.Success {
		c.logger.Warn("api request rejected",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("message", env.Message),
		)
		return env.Message, &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Message, fmt.Errorf("decoding %s payload: %w", path, err)
		}
	}
	return env.Message, nil
}

// ListComplaints fetches one page of the complaints list.
func (c *HTTPClient) ListComplaints(ctx context.Context, p ListParams) (*ListResult, error) {
	query := map[string]string{
		"stats_filter": p.StatsFilter,
		"status":       p.Status,
		"page":         strconv.Itoa(p.Page),
		"limit":        strconv.Itoa(p.Limit),
		"search":       p.Search,
	}
	if p.CategoryID > 0 {
		query["category_id"] = strconv.Itoa(p.CategoryID)
	}
	if p.ZoneID > 0 {
		query["zone_id"] = strconv.Itoa(p.ZoneID)
	}
	if p.DepartmentID > 0 {
		query["department_id"] = strconv.Itoa(p.DepartmentID)
	}

	var result ListResult
	if _, err := c.do(ctx, resty.MethodGet, "/api/complaints", query, nil, &result); err != nil {
		return nil, err
	}
	if result.Complaints == nil {
		result.Complaints = []models.Complaint{}
	}
	result.Pagination.Normalize()

	c.logger.Debug("complaints page fetched",
		zap.Int("page", result.Pagination.Page),
		zap.Int("count", len(result.Complaints)),
		zap.Int("total", result.Pagination.Total),
	)
	return &result, nil
}

// GetComplaintDetail fetches a single complaint with permission flags.
func (c *HTTPClient) GetComplaintDetail(ctx context.Context, id string) (*models.ComplaintDetail, error) {
	var detail models.ComplaintDetail
	if _, err := c.do(ctx, resty.MethodGet, "/api/complaints/"+id, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetStats fetches the aggregate stats snapshot for the given window.
func (c *HTTPClient) GetStats(ctx context.Context, p StatsParams) (*models.StatsSnapshot, error) {
	query := map[string]string{"filter_type": p.FilterType}
	if p.StartDate != "" {
		query["start_date"] = p.StartDate
	}
	if p.EndDate != "" {
		query["end_date"] = p.EndDate
	}

	var snapshot models.StatsSnapshot
	if _, err := c.do(ctx, resty.MethodGet, "/api/stats", query, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetAssignmentOptions fetches the assignment reference lists.
func (c *HTTPClient) GetAssignmentOptions(ctx context.Context) (*models.AssignmentOptions, error) {
	var options models.AssignmentOptions
	if _, err := c.do(ctx, resty.MethodGet, "/api/assignment-options", nil, nil, &options); err != nil {
		return nil, err
	}
	return &options, nil
}

// UpdateComplaintStatus posts a status transition and returns the resulting
// history record plus the server's success message.
func (c *HTTPClient) UpdateComplaintStatus(ctx context.Context, p UpdateStatusParams) (*StatusUpdateResult, error) {
	body := map[string]any{
		"complaint_id": p.ComplaintID,
		"status":       p.Status,
	}
	if p.Comment != "" {
		body["comment"] = p.Comment
	}
	if len(p.Attachments) > 0 {
		body["attachments"] = p.Attachments
	}

	var record models.StatusUpdateRecord
	msg, err := c.do(ctx, resty.MethodPost, "/api/complaints/status", nil, body, &record)
	if err != nil {
		return nil, err
	}

	c.logger.Info("complaint status updated",
		zap.Int("complaint_id", p.ComplaintID),
		zap.String("from", record.PreviousStatus.Value),
		zap.String("to", record.NewStatus.Value),
	)
	return &StatusUpdateResult{Record: record, Message: msg}, nil
}

// GetProjectStats fetches the project-count summary for a department.
func (c *HTTPClient) GetProjectStats(ctx context.Context, departmentID int) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	path := "/api/projects/stats/" + strconv.Itoa(departmentID)
	if _, err := c.do(ctx, resty.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
