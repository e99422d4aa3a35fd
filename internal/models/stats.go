package models

// StatsFilter describes the window a stats snapshot was computed over.
type StatsFilter struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// StatsOverview holds the dashboard totals by workflow status.
type StatsOverview struct {
	Total      int `json:"total"`
	Submitted  int `json:"submitted"`
	Assigned   int `json:"assigned"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
	Resolved   int `json:"resolved"`
}

// ActivityStats counts actions taken by the requesting user.
type ActivityStats struct {
	AssignedByYou int `json:"assigned_by_you"`
	UpdatedByYou  int `json:"updated_by_you"`
	ResolvedByYou int `json:"resolved_by_you"`
}

// ComplaintBreakdown splits the requesting user's complaints by status and
// priority label.
type ComplaintBreakdown struct {
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

// CategoryCount is a per-category total inside a summary group.
type CategoryCount struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}

// SummaryGroup is one division/zone/circle row of the complaint summary.
type SummaryGroup struct {
	GroupID    int             `json:"group_id"`
	GroupName  string          `json:"group_name"`
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
}

// ComplaintSummary is the optional nested breakdown by grouping dimension.
type ComplaintSummary struct {
	GroupBy string         `json:"group_by"` // "division", "zone" or "circle"
	Groups  []SummaryGroup `json:"groups"`
}

// StatsSnapshot is the aggregate-stats payload the dashboard renders.
type StatsSnapshot struct {
	Filter         StatsFilter        `json:"filter"`
	Overview       StatsOverview      `json:"overview"`
	YourActivity   ActivityStats      `json:"your_activity"`
	YourComplaints ComplaintBreakdown `json:"your_complaints"`
	Summary        *ComplaintSummary  `json:"complaint_summary,omitempty"`
}

// ProjectStats is the project-count summary for a department/designation.
type ProjectStats struct {
	DepartmentID      int `json:"department_id"`
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	PendingTasks      int `json:"pending_tasks"`
}
