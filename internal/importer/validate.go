package importer

import (
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// ValidatePlanSchema checks the plan schema before conversion and returns
// every problem found, each tagged with its JSON field path.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.Project.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	for i, p := range schema.Phases {
		prefix := fmt.Sprintf("phases[%d]", i)
		errs = append(errs, validatePlanItem(prefix, p.Title, p.PlannedStart, p.PlannedEnd, p.ActualStart, p.ActualEnd)...)

		for j, w := range p.Works {
			prefix := fmt.Sprintf("%s.works[%d]", prefix, j)
			errs = append(errs, validatePlanItem(prefix, w.Title, w.PlannedStart, w.PlannedEnd, w.ActualStart, w.ActualEnd)...)

			for k, task := range w.Tasks {
				prefix := fmt.Sprintf("%s.tasks[%d]", prefix, k)
				errs = append(errs, validatePlanItem(prefix, task.Title, task.PlannedStart, task.PlannedEnd, task.ActualStart, task.ActualEnd)...)

				for l, td := range task.Todos {
					prefix := fmt.Sprintf("%s.todos[%d]", prefix, l)
					if td.Title == "" {
						errs = append(errs, fmt.Errorf("%s.title is required", prefix))
					}
					if td.Status != "" && !domain.ValidStatuses[td.Status] {
						errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, td.Status))
					}
					errs = append(errs, validateOptionalDate(prefix+".due_date", td.DueDate)...)
				}
			}
		}
	}

	return errs
}

func validatePlanItem(prefix, title string, plannedStart, plannedEnd, actualStart, actualEnd *string) []error {
	var errs []error

	if title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	errs = append(errs, validateOptionalDate(prefix+".planned_start", plannedStart)...)
	errs = append(errs, validateOptionalDate(prefix+".planned_end", plannedEnd)...)
	errs = append(errs, validateOptionalDate(prefix+".actual_start", actualStart)...)
	errs = append(errs, validateOptionalDate(prefix+".actual_end", actualEnd)...)

	if ps, pe := parsePlanDate(plannedStart), parsePlanDate(plannedEnd); ps != nil && pe != nil && pe.Before(*ps) {
		errs = append(errs, fmt.Errorf("%s.planned_end %q must not be before planned_start %q", prefix, *plannedEnd, *plannedStart))
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}

func parsePlanDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
