package gantt

import (
	"testing"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) *string { return &s }

func testConfig() Config {
	return Config{DayWidth: 10, RowHeight: 20, RowGap: 0, PadBefore: 3, PadAfter: 7}
}

func singlePhaseTree(phase view.PhaseNode) []view.PhaseNode {
	return []view.PhaseNode{phase}
}

func TestComputeEmptyTreeFallsBackToNow(t *testing.T) {
	now := time.Date(2026, time.May, 10, 15, 30, 0, 0, time.UTC)

	l := Compute(Input{Now: now}, testConfig())

	assert.Empty(t, l.Rows)
	assert.Equal(t, time.Date(2026, time.May, 7, 0, 0, 0, 0, time.UTC), l.MinStart)
	assert.Equal(t, time.Date(2026, time.May, 18, 0, 0, 0, 0, time.UTC), l.MaxEnd)
	assert.Equal(t, 11, l.Days())
	assert.Equal(t, 110.0, l.Width)
}

func TestComputePadsAndSnapsBounds(t *testing.T) {
	tree := singlePhaseTree(view.PhaseNode{
		ID:           "p1",
		Title:        "Build",
		PlannedStart: day("2026-05-10"),
		PlannedEnd:   day("2026-05-12"),
	})

	l := Compute(Input{Phases: tree, Now: time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)}, testConfig())

	assert.Equal(t, time.Date(2026, time.May, 7, 0, 0, 0, 0, time.UTC), l.MinStart)
	// Last padded day is the 19th; the bound is the following midnight.
	assert.Equal(t, time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC), l.MaxEnd)

	require.Len(t, l.Rows, 1)
	planned := l.Rows[0].Planned
	require.NotNil(t, planned)
	assert.Equal(t, 30.0, planned.Left, "three days after the left bound")
	assert.Equal(t, 30.0, planned.Width, "a three-day bar includes its end day")
}

func TestComputeInProgressBarExtendsToNow(t *testing.T) {
	now := time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)
	tree := singlePhaseTree(view.PhaseNode{
		ID:          "p1",
		Title:       "Build",
		ActualStart: day("2026-05-10"),
	})

	l := Compute(Input{Phases: tree, Now: now}, testConfig())

	require.Len(t, l.Rows, 1)
	actual := l.Rows[0].Actual
	require.NotNil(t, actual)
	// Bar runs from the 10th through the 15th inclusive.
	assert.Equal(t, 30.0, actual.Left)
	assert.Equal(t, 60.0, actual.Width)
	// Now participates in the bounds scan, so padding hangs off the 15th.
	assert.Equal(t, time.Date(2026, time.May, 23, 0, 0, 0, 0, time.UTC), l.MaxEnd)
}

func TestComputeSuppressesBarsForMissingOrInvertedDates(t *testing.T) {
	tree := []view.PhaseNode{
		{ID: "no-dates", Title: "empty"},
		{ID: "start-only", Title: "half", PlannedStart: day("2026-05-10")},
		{ID: "inverted", Title: "bad", PlannedStart: day("2026-05-12"), PlannedEnd: day("2026-05-10")},
	}

	l := Compute(Input{Phases: tree, Now: time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)}, testConfig())

	require.Len(t, l.Rows, 3)
	for _, row := range l.Rows {
		assert.Nil(t, row.Planned, row.NodeID)
		assert.Nil(t, row.Actual, row.NodeID)
	}
}

func TestComputeCollapseRemovesRowsAndTightensBounds(t *testing.T) {
	tree := singlePhaseTree(view.PhaseNode{
		ID:           "p1",
		Title:        "Build",
		PlannedStart: day("2026-05-10"),
		PlannedEnd:   day("2026-05-12"),
		Works: []view.WorkNode{{
			ID:    "w1",
			Title: "Backend",
			Tasks: []view.TaskNode{{
				ID:           "t1",
				Title:        "API",
				PlannedStart: day("2026-05-10"),
				PlannedEnd:   day("2026-09-30"),
			}},
		}},
	})
	now := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)

	expanded := Compute(Input{Phases: tree, Now: now}, testConfig())
	require.Len(t, expanded.Rows, 3)
	assert.Equal(t, time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC), expanded.MaxEnd)

	collapsed := Compute(Input{
		Phases:    tree,
		Collapsed: map[string]bool{"p1": true},
		Now:       now,
	}, testConfig())
	require.Len(t, collapsed.Rows, 1)
	assert.True(t, collapsed.Rows[0].Collapsed)
	// The far-future task no longer stretches the axis.
	assert.Equal(t, time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC), collapsed.MaxEnd)
}

func TestComputeVerticalGeometry(t *testing.T) {
	tree := singlePhaseTree(view.PhaseNode{
		ID:    "p1",
		Title: "Build",
		Works: []view.WorkNode{{ID: "w1", Title: "Backend"}},
	})
	cfg := Config{DayWidth: 10, RowHeight: 20, RowGap: 5, PadBefore: 3, PadAfter: 7}
	now := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)

	uniform := Compute(Input{Phases: tree, Now: now}, cfg)
	require.Len(t, uniform.Rows, 2)
	assert.Equal(t, Rect{Top: 0, Height: 20}, uniform.Rows[0].Rect)
	assert.Equal(t, Rect{Top: 25, Height: 20}, uniform.Rows[1].Rect)
	assert.Equal(t, 45.0, uniform.Height)

	// Measured rectangles win over uniform stacking where present.
	measured := Compute(Input{
		Phases:   tree,
		Measured: map[string]Rect{"w1": {Top: 100, Height: 40}},
		Now:      now,
	}, cfg)
	assert.Equal(t, Rect{Top: 0, Height: 20}, measured.Rows[0].Rect)
	assert.Equal(t, Rect{Top: 100, Height: 40}, measured.Rows[1].Rect)
	assert.Equal(t, 140.0, measured.Height)
}

func TestComputeDueMarkersOnTaskRow(t *testing.T) {
	tree := singlePhaseTree(view.PhaseNode{
		ID:    "p1",
		Title: "Build",
		Works: []view.WorkNode{{
			ID:    "w1",
			Title: "Backend",
			Tasks: []view.TaskNode{{
				ID:           "t1",
				Title:        "API",
				PlannedStart: day("2026-05-10"),
				PlannedEnd:   day("2026-05-14"),
				Todos: []view.TodoNode{
					{ID: "td1", Title: "done step", DueDate: day("2026-05-12"), Status: domain.StatusDone},
					{ID: "td2", Title: "no due"},
				},
			}},
		}},
	})

	l := Compute(Input{Phases: tree, Now: time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)}, testConfig())

	require.Len(t, l.Rows, 3)
	taskRow := l.Rows[2]
	require.Equal(t, KindTask, taskRow.Kind)
	require.Len(t, taskRow.Markers, 1, "todos without a due date get no marker")

	m := taskRow.Markers[0]
	assert.Equal(t, "td1", m.TodoID)
	assert.True(t, m.Done)
	// Centered within the due day and within the task's row.
	assert.Equal(t, 55.0, m.X)
	assert.Equal(t, taskRow.Rect.Top+taskRow.Rect.Height/2, m.Y)
}
