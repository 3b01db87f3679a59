package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

func (s *Server) listProjects(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"

	summaries, err := s.projects.List(c.Request.Context(), includeArchived)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	project, err := s.projects.Create(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.NewProject(project))
}

func (s *Server) getProject(c *gin.Context) {
	project, err := s.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.NewProject(project))
}

func (s *Server) patchProject(c *gin.Context) {
	var req patchProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if _, err := s.projects.Patch(c.Request.Context(), c.Param("id"), req.toPatch()); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteProject(c *gin.Context) {
	if err := s.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getHierarchy(c *gin.Context) {
	h, err := s.hierarchy.Hierarchy(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) listTodayTodos(c *gin.Context) {
	todos, err := s.todos.ListToday(c.Request.Context(), c.Param("id"), service.TodayQuery{
		AssigneeID: c.Query("assigneeId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}
