package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for all planning dates.
const DateLayout = "2006-01-02"

// Patch fields are tri-state: a nil pointer means the field was not supplied
// and the prior value stays untouched; an empty string explicitly clears the
// field; any other value sets it.

type ProjectPatch struct {
	Name        *string
	Description *string
	OwnerID     *string
	Archived    *bool
}

type PlanItemPatch struct {
	Title        *string
	PlannedStart *string
	PlannedEnd   *string
	ActualStart  *string
	ActualEnd    *string
}

type TodoPatch struct {
	Title        *string
	Status       *string
	AssigneeID   *string
	DueDate      *string
	Memo         *string
	ReferenceURL *string
	Today        *bool
}

// MergeDate applies a tri-state date patch to the current value.
// nil leaves the current value, "" clears it, anything else must parse as
// a calendar day.
func MergeDate(current *time.Time, patch *string) (*time.Time, error) {
	if patch == nil {
		return current, nil
	}
	if *patch == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *patch)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected %s", *patch, DateLayout)
	}
	return &t, nil
}

// MergeString applies a tri-state string patch to the current value.
func MergeString(current string, patch *string) string {
	if patch == nil {
		return current
	}
	return *patch
}

// MergeBool applies an optional bool patch to the current value.
func MergeBool(current bool, patch *bool) bool {
	if patch == nil {
		return current
	}
	return *patch
}
