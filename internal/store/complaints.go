package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

// ComplaintsState is a snapshot of the complaints-list container.
type ComplaintsState struct {
	Loading       bool
	Error         string
	Complaints    []models.Complaint
	Pagination    models.Pagination
	FilterOptions *models.FilterOptions
	Filters       *models.CurrentFilters
}

// Complaints holds the paginated complaints list. Incremental fetches append
// to the accumulated list (infinite scroll); fresh fetches replace it.
type Complaints struct {
	gw     gateway.Client
	logger *zap.Logger

	mu    sync.RWMutex
	state ComplaintsState
	notifier
}

// NewComplaints creates an empty complaints-list container.
func NewComplaints(gw gateway.Client, logger *zap.Logger) *Complaints {
	return &Complaints{gw: gw, logger: logger}
}

// FetchComplaintsParams parameterize one list fetch. Incremental marks a
// "load more" request whose page is appended to the current list.
type FetchComplaintsParams struct {
	StatsFilter  string
	Status       string
	Page         int
	Limit        int
	Search       string
	CategoryID   int
	ZoneID       int
	DepartmentID int
	Incremental  bool
}

// Fetch runs the list action: loading, gateway call, then exactly one of
// the success or failure updates.
func (s *Complaints) Fetch(ctx context.Context, p FetchComplaintsParams) {
	s.start()

	result, err := s.gw.ListComplaints(ctx, gateway.ListParams{
		StatsFilter:  p.StatsFilter,
		Status:       p.Status,
		Page:         p.Page,
		Limit:        p.Limit,
		Search:       p.Search,
		CategoryID:   p.CategoryID,
		ZoneID:       p.ZoneID,
		DepartmentID: p.DepartmentID,
	})
	if err != nil {
		s.logger.Warn("complaints fetch failed", zap.Int("page", p.Page), zap.Error(err))
		s.fail(errorMessage(err, "Failed to fetch complaints"))
		return
	}
	s.complete(result, p.Incremental)
}

func (s *Complaints) start() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()
}

func (s *Complaints) complete(result *gateway.ListResult, incremental bool) {
	s.mu.Lock()
	s.state.Loading = false
	if incremental && s.state.Complaints != nil {
		s.state.Complaints = append(s.state.Complaints, result.Complaints...)
	} else {
		s.state.Complaints = result.Complaints
	}
	s.state.Pagination = result.Pagination
	if result.FilterOptions != nil {
		s.state.FilterOptions = result.FilterOptions
	}
	if result.Filters != nil {
		s.state.Filters = result.Filters
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Complaints) fail(msg string) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Error = msg
	s.mu.Unlock()
	s.notify()
}

// Clear resets the container; screens call it when the filter context
// changes enough that the accumulated pages are no longer valid.
func (s *Complaints) Clear() {
	s.mu.Lock()
	s.state = ComplaintsState{}
	s.mu.Unlock()
	s.notify()
}

// State returns the current tri-state snapshot.
func (s *Complaints) State() ComplaintsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// FilterOptions returns the most recently received filter reference lists,
// or nil before the first list response carries them.
func (s *Complaints) FilterOptions() *models.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.FilterOptions
}

// CurrentPage returns the page number of the last stored response.
func (s *Complaints) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Pagination.Page
}

// HasNext reports whether another page is available.
func (s *Complaints) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Pagination.HasNext
}

// StatusFilter returns the status filter the server applied, or "" when no
// list response has been stored yet.
func (s *Complaints) StatusFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Filters == nil {
		return ""
	}
	return s.state.Filters.Status
}
