package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"civicworks/internal/gateway"
	"civicworks/internal/models"
)

func TestErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &gateway.APIError{StatusCode: 403, Message: "Not allowed"}, "Not allowed"},
		{"api error without message", &gateway.APIError{StatusCode: 500}, "api request failed with status 500"},
		{"plain error", errors.New("connection reset"), "connection reset"},
		{"nil error", nil, "Fallback text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err, "Fallback text"))
		})
	}
}

func TestNotifierSubscribeAndUnsubscribe(t *testing.T) {
	var n notifier
	var a, b int
	unsubA := n.Subscribe(func() { a++ })
	unsubB := n.Subscribe(func() { b++ })

	n.notify()
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	unsubA()
	n.notify()
	assert.Equal(t, 1, a, "unsubscribed callback must not fire")
	assert.Equal(t, 2, b)

	unsubB()
	n.notify()
	assert.Equal(t, 2, b)
}

func TestDetailFetchAndStaleOnError(t *testing.T) {
	fake := &fakeGateway{}
	fake.detailFn = func(ctx context.Context, id string) (*models.ComplaintDetail, error) {
		return &models.ComplaintDetail{
			Complaint: models.Complaint{ID: 17, Status: models.StatusAssigned},
			CanAssign: true,
		}, nil
	}
	s := NewDetail(fake, zap.NewNop())
	s.Fetch(context.Background(), "17")

	state := s.State()
	assert.Equal(t, "17", state.ComplaintID)
	require.NotNil(t, state.Detail)
	assert.Equal(t, 17, state.Detail.ID)
	assert.True(t, s.CanAssign())

	fake.detailFn = func(ctx context.Context, id string) (*models.ComplaintDetail, error) {
		return nil, errors.New("timeout")
	}
	s.Fetch(context.Background(), "18")

	state = s.State()
	assert.Equal(t, "timeout", state.Error)
	assert.Equal(t, "18", state.ComplaintID)
	require.NotNil(t, state.Detail, "stale detail stays visible")
	assert.Equal(t, 17, state.Detail.ID)

	s.Clear()
	assert.Equal(t, DetailState{}, s.State())
	assert.False(t, s.CanAssign())
}

func TestStatsFetch(t *testing.T) {
	fake := &fakeGateway{}
	fake.statsFn = func(ctx context.Context, p gateway.StatsParams) (*models.StatsSnapshot, error) {
		assert.Equal(t, "this_week", p.FilterType)
		return &models.StatsSnapshot{
			Filter:   models.StatsFilter{Type: "this_week"},
			Overview: models.StatsOverview{Total: 31, InProgress: 12},
		}, nil
	}
	s := NewStats(fake, zap.NewNop())
	s.Fetch(context.Background(), FetchStatsParams{FilterType: "this_week"})

	assert.Equal(t, 31, s.OverviewTotal())
	assert.Empty(t, s.State().Error)

	fake.statsFn = func(ctx context.Context, p gateway.StatsParams) (*models.StatsSnapshot, error) {
		return nil, &gateway.APIError{StatusCode: 502, Message: "Stats unavailable"}
	}
	s.Fetch(context.Background(), FetchStatsParams{FilterType: "this_week"})
	assert.Equal(t, "Stats unavailable", s.State().Error)
	assert.Equal(t, 31, s.OverviewTotal(), "stale snapshot stays visible")
}

func TestAssignmentsCascadingSelectors(t *testing.T) {
	fake := &fakeGateway{}
	fake.optionsFn = func(ctx context.Context) (*models.AssignmentOptions, error) {
		return &models.AssignmentOptions{
			Divisions: []models.Division{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}},
			SubDivisions: []models.SubDivision{
				{ID: 10, Name: "North-1", DivisionID: 1},
				{ID: 11, Name: "North-2", DivisionID: 1},
				{ID: 20, Name: "South-1", DivisionID: 2},
			},
			Departments: []models.Option{{ID: 6, Name: "Water Works"}},
			Designations: []models.Designation{
				{ID: 100, Name: "Junior Engineer", DepartmentID: 6},
			},
			Users: []models.AssignableUser{
				{ID: 1, Name: "R. Patil", DepartmentID: 6, DesignationID: 100},
				{ID: 2, Name: "S. Kulkarni", DepartmentID: 6, DesignationID: 101},
				{ID: 3, Name: "A. Deshmukh", DepartmentID: 7, DesignationID: 100},
			},
		}, nil
	}
	s := NewAssignments(fake, zap.NewNop())

	assert.Nil(t, s.SubDivisionsFor(1), "no options before the first fetch")

	s.Fetch(context.Background())
	require.Empty(t, s.State().Error)

	subs := s.SubDivisionsFor(1)
	require.Len(t, subs, 2)
	assert.Equal(t, "North-1", subs[0].Name)

	users := s.UsersFor(6, 0)
	assert.Len(t, users, 2, "zero designation means department-wide")

	users = s.UsersFor(6, 100)
	require.Len(t, users, 1)
	assert.Equal(t, "R. Patil", users[0].Name)
}

func TestProjectsAccumulatePerDepartment(t *testing.T) {
	fake := &fakeGateway{}
	fake.projectFn = func(ctx context.Context, departmentID int) (*models.ProjectStats, error) {
		return &models.ProjectStats{DepartmentID: departmentID, TotalProjects: departmentID * 10}, nil
	}
	s := NewProjects(fake, zap.NewNop())

	s.Fetch(context.Background(), 6)
	s.Fetch(context.Background(), 7)

	first, ok := s.For(6)
	require.True(t, ok)
	assert.Equal(t, 60, first.TotalProjects)
	second, ok := s.For(7)
	require.True(t, ok)
	assert.Equal(t, 70, second.TotalProjects)

	// The snapshot map is a copy; mutating it must not leak back.
	snap := s.State()
	snap.Stats[6] = models.ProjectStats{TotalProjects: 999}
	unchanged, _ := s.For(6)
	assert.Equal(t, 60, unchanged.TotalProjects)
}

func TestSelectionsRegistry(t *testing.T) {
	s := NewSelections()
	var notified int
	unsub := s.Subscribe(func() { notified++ })
	defer unsub()

	_, ok := s.Get("department")
	assert.False(t, ok)

	s.Set("department", "Water Works", "CMP-17")
	sel, ok := s.Get("department")
	require.True(t, ok)
	assert.Equal(t, "Water Works", sel.Value)
	assert.Equal(t, "CMP-17", sel.ComplaintID)
	assert.True(t, s.IsSelected("department", "Water Works"))
	assert.False(t, s.IsSelected("department", "Electrical"))
	assert.False(t, s.IsSelected("assignee", "Water Works"))

	s.Set("assignee", "R. Patil", "")
	s.ClearField("department")
	_, ok = s.Get("department")
	assert.False(t, ok)
	_, ok = s.Get("assignee")
	assert.True(t, ok)

	s.Clear()
	_, ok = s.Get("assignee")
	assert.False(t, ok)
	assert.Equal(t, 4, notified, "every write must notify subscribers")
}

func TestNewWiresAllContainers(t *testing.T) {
	st := New(&fakeGateway{}, zap.NewNop())
	require.NotNil(t, st.Complaints)
	require.NotNil(t, st.Detail)
	require.NotNil(t, st.Stats)
	require.NotNil(t, st.Projects)
	require.NotNil(t, st.Assignments)
	require.NotNil(t, st.StatusUpdates)
	require.NotNil(t, st.Selections)
}
