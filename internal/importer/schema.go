// Package importer loads whole project plans from JSON files: parse,
// validate with field-path errors, then convert to domain entities ready for
// a single transactional insert.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanSchema is the top-level JSON structure for a project plan file. The
// hierarchy is nested the same way it is rendered, so no cross-references
// are needed.
type PlanSchema struct {
	Project ProjectImport `json:"project"`
	Phases  []PhaseImport `json:"phases"`
}

// ProjectImport defines the project-level fields in the plan file.
type ProjectImport struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
}

// PhaseImport defines one phase and its nested works.
type PhaseImport struct {
	Title        string       `json:"title"`
	PlannedStart *string      `json:"planned_start,omitempty"`
	PlannedEnd   *string      `json:"planned_end,omitempty"`
	ActualStart  *string      `json:"actual_start,omitempty"`
	ActualEnd    *string      `json:"actual_end,omitempty"`
	Works        []WorkImport `json:"works,omitempty"`
}

// WorkImport defines one work and its nested tasks.
type WorkImport struct {
	Title        string       `json:"title"`
	PlannedStart *string      `json:"planned_start,omitempty"`
	PlannedEnd   *string      `json:"planned_end,omitempty"`
	ActualStart  *string      `json:"actual_start,omitempty"`
	ActualEnd    *string      `json:"actual_end,omitempty"`
	Tasks        []TaskImport `json:"tasks,omitempty"`
}

// TaskImport defines one task and its nested todos.
type TaskImport struct {
	Title        string       `json:"title"`
	PlannedStart *string      `json:"planned_start,omitempty"`
	PlannedEnd   *string      `json:"planned_end,omitempty"`
	ActualStart  *string      `json:"actual_start,omitempty"`
	ActualEnd    *string      `json:"actual_end,omitempty"`
	Todos        []TodoImport `json:"todos,omitempty"`
}

// TodoImport defines one todo leaf.
type TodoImport struct {
	Title        string  `json:"title"`
	Status       string  `json:"status,omitempty"`
	AssigneeID   string  `json:"assignee_id,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Memo         string  `json:"memo,omitempty"`
	ReferenceURL string  `json:"reference_url,omitempty"`
	Today        bool    `json:"today,omitempty"`
}

// LoadPlanSchema reads and parses a project plan JSON file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PlanSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}
