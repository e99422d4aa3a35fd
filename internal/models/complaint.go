package models

// Complaint workflow statuses as returned by the API.
const (
	StatusSubmitted  = "submitted"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
	StatusResolved   = "resolved"

	// StatusReopened is only valid as a transition target, never as a
	// stored workflow status.
	StatusReopened = "reopened"
)

// ValidStatus reports whether s is one of the workflow statuses a complaint
// can be in.
func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusAssigned, StatusInProgress, StatusClosed, StatusResolved:
		return true
	}
	return false
}

// ValidTargetStatus reports whether s is an acceptable target for a status
// update request.
func ValidTargetStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusAssigned, StatusClosed, StatusReopened:
		return true
	}
	return false
}

// UserBrief identifies a user on assignment and resolution metadata.
type UserBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DepartmentBrief identifies a department on assignment metadata.
type DepartmentBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Complaint is a single grievance record as held by the list and detail
// containers. Timestamps stay in the wire format (ISO 8601 strings); the
// screens render them as-is.
type Complaint struct {
	ID              int    `json:"id"`
	ComplaintNumber string `json:"complaint_number"`
	ComplainantName string `json:"complainant_name"`
	MobileNumber    string `json:"mobile_number"`
	CategoryID      int    `json:"category_id"`
	CategoryName    string `json:"category_name"`
	SubCategoryID   int    `json:"sub_category_id"`
	SubCategoryName string `json:"sub_category_name"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	Priority        int    `json:"priority"`
	Status          string `json:"status"`
	Source          string `json:"source"`
	PollNumber      string `json:"poll_number,omitempty"`
	FlatNumber      string `json:"flat_number,omitempty"`

	AssignedDepartment *DepartmentBrief `json:"assigned_department,omitempty"`
	AssignedUser       *UserBrief       `json:"assigned_user,omitempty"`
	AssignedAt         string           `json:"assigned_at,omitempty"`
	AssignedBy         *UserBrief       `json:"assigned_by,omitempty"`

	ResolvedAt string     `json:"resolved_at,omitempty"`
	ResolvedBy *UserBrief `json:"resolved_by,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	HasPhotos    bool `json:"has_photos"`
	HasVideos    bool `json:"has_videos"`
	HasDocuments bool `json:"has_documents"`
}

// PriorityDisplay derives the label screens show for the numeric priority.
// The mapping is fixed so list rows and detail headers always agree.
func (c Complaint) PriorityDisplay() string {
	switch c.Priority {
	case 1:
		return "Low"
	case 2:
		return "Medium"
	case 3:
		return "High"
	case 4:
		return "Critical"
	}
	return "Unknown"
}

// ComplaintDetail is the detail-screen record: the complaint plus the
// permission flags the server computed for the requesting user.
type ComplaintDetail struct {
	Complaint
	CanEdit    bool `json:"can_edit"`
	CanAssign  bool `json:"can_assign"`
	CanResolve bool `json:"can_resolve"`
}

// Pagination is the paging block returned alongside every list response.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// Normalize recomputes the availability flags from page/pages so that a
// server that omits them (or sends stale ones) cannot break infinite scroll.
func (p *Pagination) Normalize() {
	p.HasNext = p.Page < p.Pages
	p.HasPrev = p.Page > 1
}

// Option is a generic id/name reference entry in filter lists.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusRef is a status value with its display label.
type StatusRef struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PriorityOption is a numeric priority with its display label.
type PriorityOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FilterOptions are the reference lists the server ships with a list
// response so the filter sheet can be populated without extra lookups.
type FilterOptions struct {
	Categories      []Option         `json:"categories"`
	Zones           []Option         `json:"zones"`
	Departments     []Option         `json:"departments"`
	StatusOptions   []StatusRef      `json:"status_options"`
	PriorityOptions []PriorityOption `json:"priority_options"`
}

// CurrentFilters echoes the filters the server actually applied to a list
// response.
type CurrentFilters struct {
	StatsFilter  string `json:"stats_filter"`
	Status       string `json:"status"`
	Search       string `json:"search"`
	CategoryID   int    `json:"category_id"`
	ZoneID       int    `json:"zone_id"`
	DepartmentID int    `json:"department_id"`
}

// StatusUpdateRecord is the outcome of a status transition.
type StatusUpdateRecord struct {
	HistoryID      int       `json:"history_id"`
	PreviousStatus StatusRef `json:"previous_status"`
	NewStatus      StatusRef `json:"new_status"`
	Comment        string    `json:"comment,omitempty"`
	UpdatedBy      UserBrief `json:"updated_by"`
	UpdatedAt      string    `json:"updated_at"`
}
