package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
)

func (s *Server) createTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	todo, err := s.todos.Create(c.Request.Context(), c.Param("id"), req.TaskID, service.CreateTodoInput{
		Title:        req.Title,
		Status:       req.Status,
		AssigneeID:   req.AssigneeID,
		DueDate:      req.DueDate,
		Memo:         req.Memo,
		ReferenceURL: req.ReferenceURL,
		Today:        req.Today,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": todo.ID, "orderIndex": todo.OrderIndex, "status": todo.Status})
}

func (s *Server) patchTodo(c *gin.Context) {
	var req patchTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if _, err := s.todos.Patch(c.Request.Context(), c.Param("id"), req.toPatch()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteTodo(c *gin.Context) {
	if err := s.todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) reorderScope(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if err := s.reorder.Reorder(c.Request.Context(), domain.ScopeType(req.Type), req.IDs); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
