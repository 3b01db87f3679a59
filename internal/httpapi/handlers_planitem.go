package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
)

// Created planning items come back as 201 with the derived status included,
// so clients can render the new row without a hierarchy re-fetch.

type planItemResponse struct {
	ID         string        `json:"id"`
	OrderIndex int           `json:"orderIndex"`
	Status     domain.Status `json:"status"`
}

func planInput(req createPhaseRequest) service.CreatePlanItemInput {
	return service.CreatePlanItemInput{
		Title:        req.Title,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		ActualStart:  req.ActualStart,
		ActualEnd:    req.ActualEnd,
	}
}

func (s *Server) createPhase(c *gin.Context) {
	var req createPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	phase, err := s.phases.Create(c.Request.Context(), c.Param("id"), planInput(req))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, planItemResponse{
		ID:         phase.ID,
		OrderIndex: phase.OrderIndex,
		Status:     phase.DerivedStatus(),
	})
}

func (s *Server) createWork(c *gin.Context) {
	var req createWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	work, err := s.works.Create(c.Request.Context(), c.Param("id"), req.PhaseID, planInput(req.createPhaseRequest))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, planItemResponse{
		ID:         work.ID,
		OrderIndex: work.OrderIndex,
		Status:     work.DerivedStatus(),
	})
}

func (s *Server) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), c.Param("id"), req.WorkID, planInput(req.createPhaseRequest))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, planItemResponse{
		ID:         task.ID,
		OrderIndex: task.OrderIndex,
		Status:     task.DerivedStatus(),
	})
}

func (s *Server) patchPhase(c *gin.Context) {
	var req patchPlanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if _, err := s.phases.Patch(c.Request.Context(), c.Param("id"), req.toPatch()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) patchWork(c *gin.Context) {
	var req patchPlanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if _, err := s.works.Patch(c.Request.Context(), c.Param("id"), req.toPatch()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) patchTask(c *gin.Context) {
	var req patchPlanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if _, err := s.tasks.Patch(c.Request.Context(), c.Param("id"), req.toPatch()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deletePhase(c *gin.Context) {
	if err := s.phases.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteWork(c *gin.Context) {
	if err := s.works.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
