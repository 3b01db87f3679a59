// Package view holds the read models returned by services and serialized by
// the HTTP layer. Statuses on planning nodes are always re-derived from
// actual dates at assembly time; progress is computed bottom-up and never
// read from storage.
package view

import (
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// Project is the serializable shape of a project.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectSummary is a project row for the listing endpoint, with rolled-up
// progress and per-level counts.
type ProjectSummary struct {
	Project
	Progress   int `json:"progress"`
	PhaseCount int `json:"phaseCount"`
	WorkCount  int `json:"workCount"`
	TaskCount  int `json:"taskCount"`
	TodoCount  int `json:"todoCount"`
}

// Hierarchy is the full nested tree for one project.
type Hierarchy struct {
	Project Project     `json:"project"`
	Phases  []PhaseNode `json:"phases"`
}

// PhaseNode is a phase with derived status, computed progress and its works.
type PhaseNode struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	Title        string        `json:"title"`
	PlannedStart *string       `json:"plannedStart"`
	PlannedEnd   *string       `json:"plannedEnd"`
	ActualStart  *string       `json:"actualStart"`
	ActualEnd    *string       `json:"actualEnd"`
	OrderIndex   int           `json:"orderIndex"`
	Status       domain.Status `json:"status"`
	Progress     int           `json:"progress"`
	Works        []WorkNode    `json:"works"`
}

// WorkNode is a work with derived status, computed progress and its tasks.
type WorkNode struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	PhaseID      string        `json:"phaseId"`
	Title        string        `json:"title"`
	PlannedStart *string       `json:"plannedStart"`
	PlannedEnd   *string       `json:"plannedEnd"`
	ActualStart  *string       `json:"actualStart"`
	ActualEnd    *string       `json:"actualEnd"`
	OrderIndex   int           `json:"orderIndex"`
	Status       domain.Status `json:"status"`
	Progress     int           `json:"progress"`
	Tasks        []TaskNode    `json:"tasks"`
}

// TaskNode is a task with derived status, computed progress and its todos.
type TaskNode struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	WorkID       string        `json:"workId"`
	Title        string        `json:"title"`
	PlannedStart *string       `json:"plannedStart"`
	PlannedEnd   *string       `json:"plannedEnd"`
	ActualStart  *string       `json:"actualStart"`
	ActualEnd    *string       `json:"actualEnd"`
	OrderIndex   int           `json:"orderIndex"`
	Status       domain.Status `json:"status"`
	Progress     int           `json:"progress"`
	Todos        []TodoNode    `json:"todos"`
}

// TodoNode is a todo leaf. Its status is the stored, settable value.
type TodoNode struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	TaskID       string        `json:"taskId"`
	Title        string        `json:"title"`
	Status       domain.Status `json:"status"`
	AssigneeID   string        `json:"assigneeId,omitempty"`
	DueDate      *string       `json:"dueDate"`
	Memo         string        `json:"memo,omitempty"`
	ReferenceURL string        `json:"referenceUrl,omitempty"`
	Today        bool          `json:"today"`
	OrderIndex   int           `json:"orderIndex"`
}

// DateString formats a nullable time as a calendar-day string for transport.
func DateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

// NewProject converts a domain project.
func NewProject(p *domain.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Archived:    p.Archived,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewTodoNode converts a domain todo.
func NewTodoNode(t *domain.Todo) TodoNode {
	return TodoNode{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		TaskID:       t.TaskID,
		Title:        t.Title,
		Status:       t.Status,
		AssigneeID:   t.AssigneeID,
		DueDate:      DateString(t.DueDate),
		Memo:         t.Memo,
		ReferenceURL: t.ReferenceURL,
		Today:        t.Today,
		OrderIndex:   t.OrderIndex,
	}
}
