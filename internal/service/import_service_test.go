package service

import (
	"context"
	"testing"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportPersistsWholePlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewImportService(f.uow, nil)

	start := "2026-06-01"
	schema := &importer.PlanSchema{
		Project: importer.ProjectImport{Name: "Relaunch"},
		Phases: []importer.PhaseImport{{
			Title:        "Design",
			PlannedStart: &start,
			Works: []importer.WorkImport{{
				Title: "Wireframes",
				Tasks: []importer.TaskImport{{
					Title: "Landing page",
					Todos: []importer.TodoImport{
						{Title: "Hero", Status: string(domain.StatusDone)},
						{Title: "Footer"},
					},
				}},
			}},
		}},
	}

	project, err := svc.Import(ctx, schema)
	require.NoError(t, err)

	h, err := f.hierarchySvc.Hierarchy(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, h.Phases, 1)
	require.Len(t, h.Phases[0].Works, 1)
	require.Len(t, h.Phases[0].Works[0].Tasks, 1)
	taskNode := h.Phases[0].Works[0].Tasks[0]
	require.Len(t, taskNode.Todos, 2)
	assert.Equal(t, 50, taskNode.Progress)
}

func TestImportRejectsInvalidPlanWithoutWriting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewImportService(f.uow, nil)

	schema := &importer.PlanSchema{
		Phases: []importer.PhaseImport{{Title: ""}},
	}

	_, err := svc.Import(ctx, schema)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "project.name is required")

	projects, err := f.projects.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
