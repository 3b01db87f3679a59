package httpapi

import "github.com/riu-shimizu/Project-Todo-Manager/internal/domain"

// Patch request fields are pointers so the three patch states survive JSON
// decoding: absent field = nil = keep, "" = clear, value = set.

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

type patchProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OwnerID     *string `json:"ownerId"`
	Archived    *bool   `json:"archived"`
}

func (r patchProjectRequest) toPatch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		Archived:    r.Archived,
	}
}

type createPhaseRequest struct {
	Title        string `json:"title" binding:"required"`
	PlannedStart string `json:"plannedStart" binding:"omitempty,dateonly"`
	PlannedEnd   string `json:"plannedEnd" binding:"omitempty,dateonly"`
	ActualStart  string `json:"actualStart" binding:"omitempty,dateonly"`
	ActualEnd    string `json:"actualEnd" binding:"omitempty,dateonly"`
}

type createWorkRequest struct {
	PhaseID string `json:"phaseId" binding:"required"`
	createPhaseRequest
}

type createTaskRequest struct {
	WorkID string `json:"workId" binding:"required"`
	createPhaseRequest
}

type patchPlanItemRequest struct {
	Title        *string `json:"title"`
	PlannedStart *string `json:"plannedStart" binding:"omitempty,dateonly"`
	PlannedEnd   *string `json:"plannedEnd" binding:"omitempty,dateonly"`
	ActualStart  *string `json:"actualStart" binding:"omitempty,dateonly"`
	ActualEnd    *string `json:"actualEnd" binding:"omitempty,dateonly"`
}

func (r patchPlanItemRequest) toPatch() domain.PlanItemPatch {
	return domain.PlanItemPatch{
		Title:        r.Title,
		PlannedStart: r.PlannedStart,
		PlannedEnd:   r.PlannedEnd,
		ActualStart:  r.ActualStart,
		ActualEnd:    r.ActualEnd,
	}
}

type createTodoRequest struct {
	TaskID       string `json:"taskId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Status       string `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS DONE"`
	AssigneeID   string `json:"assigneeId"`
	DueDate      string `json:"dueDate" binding:"omitempty,dateonly"`
	Memo         string `json:"memo"`
	ReferenceURL string `json:"referenceUrl"`
	Today        bool   `json:"today"`
}

type patchTodoRequest struct {
	Title        *string `json:"title"`
	Status       *string `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS DONE"`
	AssigneeID   *string `json:"assigneeId"`
	DueDate      *string `json:"dueDate" binding:"omitempty,dateonly"`
	Memo         *string `json:"memo"`
	ReferenceURL *string `json:"referenceUrl"`
	Today        *bool   `json:"today"`
}

func (r patchTodoRequest) toPatch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:        r.Title,
		Status:       r.Status,
		AssigneeID:   r.AssigneeID,
		DueDate:      r.DueDate,
		Memo:         r.Memo,
		ReferenceURL: r.ReferenceURL,
		Today:        r.Today,
	}
}

type reorderRequest struct {
	Type string   `json:"type" binding:"required,oneof=phase work task todo"`
	IDs  []string `json:"ids" binding:"required,min=1"`
}
