package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// Plan holds the converted domain entities, flattened per level for
// straightforward bulk insertion.
type Plan struct {
	Project *domain.Project
	Phases  []*domain.Phase
	Works   []*domain.Work
	Tasks   []*domain.Task
	Todos   []*domain.Todo
}

// Convert transforms a validated plan schema into domain objects ready for
// persistence. Call ValidatePlanSchema first; Convert assumes the schema is
// valid. Order indexes follow file order, 1-based per sibling scope.
func Convert(schema *PlanSchema) *Plan {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:          uuid.New().String(),
		Name:        schema.Project.Name,
		Description: schema.Project.Description,
		OwnerID:     schema.Project.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	plan := &Plan{Project: project}

	for i, p := range schema.Phases {
		phase := &domain.Phase{
			ID:           uuid.New().String(),
			ProjectID:    project.ID,
			Title:        p.Title,
			PlannedStart: parsePlanDate(p.PlannedStart),
			PlannedEnd:   parsePlanDate(p.PlannedEnd),
			ActualStart:  parsePlanDate(p.ActualStart),
			ActualEnd:    parsePlanDate(p.ActualEnd),
			OrderIndex:   i + 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		plan.Phases = append(plan.Phases, phase)

		for j, w := range p.Works {
			work := &domain.Work{
				ID:           uuid.New().String(),
				ProjectID:    project.ID,
				PhaseID:      phase.ID,
				Title:        w.Title,
				PlannedStart: parsePlanDate(w.PlannedStart),
				PlannedEnd:   parsePlanDate(w.PlannedEnd),
				ActualStart:  parsePlanDate(w.ActualStart),
				ActualEnd:    parsePlanDate(w.ActualEnd),
				OrderIndex:   j + 1,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			plan.Works = append(plan.Works, work)

			for k, ti := range w.Tasks {
				task := &domain.Task{
					ID:           uuid.New().String(),
					ProjectID:    project.ID,
					WorkID:       work.ID,
					Title:        ti.Title,
					PlannedStart: parsePlanDate(ti.PlannedStart),
					PlannedEnd:   parsePlanDate(ti.PlannedEnd),
					ActualStart:  parsePlanDate(ti.ActualStart),
					ActualEnd:    parsePlanDate(ti.ActualEnd),
					OrderIndex:   k + 1,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				plan.Tasks = append(plan.Tasks, task)

				for l, td := range ti.Todos {
					status := domain.StatusNotStarted
					if td.Status != "" {
						status = domain.Status(td.Status)
					}
					plan.Todos = append(plan.Todos, &domain.Todo{
						ID:           uuid.New().String(),
						ProjectID:    project.ID,
						TaskID:       task.ID,
						Title:        td.Title,
						Status:       status,
						AssigneeID:   td.AssigneeID,
						DueDate:      parsePlanDate(td.DueDate),
						Memo:         td.Memo,
						ReferenceURL: td.ReferenceURL,
						Today:        td.Today,
						OrderIndex:   l + 1,
						CreatedAt:    now,
						UpdatedAt:    now,
					})
				}
			}
		}
	}

	return plan
}
