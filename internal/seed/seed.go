// Package seed creates a small demo project so the TUI and API have
// something to show on a fresh database.
package seed

import (
	"context"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/importer"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
)

// Demo inserts the demo project and returns it. Dates are laid out around
// the given day so the chart always has bars near "today".
func Demo(ctx context.Context, imports service.ImportService, today time.Time) (*domain.Project, error) {
	return imports.Import(ctx, demoSchema(today))
}

func demoSchema(today time.Time) *importer.PlanSchema {
	day := func(offset int) *string {
		s := today.AddDate(0, 0, offset).Format(domain.DateLayout)
		return &s
	}
	done := string(domain.StatusDone)
	inProgress := string(domain.StatusInProgress)

	return &importer.PlanSchema{
		Project: importer.ProjectImport{
			Name:        "Website relaunch",
			Description: "Demo project",
			OwnerID:     "demo",
		},
		Phases: []importer.PhaseImport{
			{
				Title:        "Design",
				PlannedStart: day(-14),
				PlannedEnd:   day(-1),
				ActualStart:  day(-13),
				ActualEnd:    day(-2),
				Works: []importer.WorkImport{{
					Title:        "Wireframes",
					PlannedStart: day(-14),
					PlannedEnd:   day(-7),
					ActualStart:  day(-13),
					ActualEnd:    day(-6),
					Tasks: []importer.TaskImport{{
						Title:        "Landing page",
						PlannedStart: day(-14),
						PlannedEnd:   day(-10),
						ActualStart:  day(-13),
						ActualEnd:    day(-10),
						Todos: []importer.TodoImport{
							{Title: "Hero section", Status: done},
							{Title: "Pricing table", Status: done},
						},
					}},
				}},
			},
			{
				Title:        "Build",
				PlannedStart: day(0),
				PlannedEnd:   day(21),
				ActualStart:  day(0),
				Works: []importer.WorkImport{{
					Title:        "Backend",
					PlannedStart: day(0),
					PlannedEnd:   day(14),
					ActualStart:  day(0),
					Tasks: []importer.TaskImport{{
						Title:        "REST API",
						PlannedStart: day(0),
						PlannedEnd:   day(7),
						ActualStart:  day(0),
						Todos: []importer.TodoImport{
							{Title: "Schema migration", Status: done, DueDate: day(1)},
							{Title: "Endpoints", Status: inProgress, DueDate: day(4), Today: true},
							{Title: "Request validation", DueDate: day(6)},
						},
					}},
				}},
			},
			{
				Title:        "Launch",
				PlannedStart: day(22),
				PlannedEnd:   day(28),
			},
		},
	}
}
