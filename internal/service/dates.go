package service

import (
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// parseDate parses an optional calendar-day string from a create input.
// Empty means unset. A malformed value is a client error carrying the field
// name.
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, validationErr(field, "expected date in "+domain.DateLayout+" format")
	}
	return &t, nil
}

// parsePlanDates parses the four optional dates of a plan-item create input.
func parsePlanDates(in CreatePlanItemInput) (plannedStart, plannedEnd, actualStart, actualEnd *time.Time, err error) {
	if plannedStart, err = parseDate("plannedStart", in.PlannedStart); err != nil {
		return nil, nil, nil, nil, err
	}
	if plannedEnd, err = parseDate("plannedEnd", in.PlannedEnd); err != nil {
		return nil, nil, nil, nil, err
	}
	if actualStart, err = parseDate("actualStart", in.ActualStart); err != nil {
		return nil, nil, nil, nil, err
	}
	if actualEnd, err = parseDate("actualEnd", in.ActualEnd); err != nil {
		return nil, nil, nil, nil, err
	}
	return plannedStart, plannedEnd, actualStart, actualEnd, nil
}

// mergeDateField wraps domain.MergeDate, tagging parse failures with the
// field name so the HTTP layer can report field-level detail.
func mergeDateField(field string, current *time.Time, patch *string) (*time.Time, error) {
	merged, err := domain.MergeDate(current, patch)
	if err != nil {
		return nil, validationErr(field, err.Error())
	}
	return merged, nil
}
