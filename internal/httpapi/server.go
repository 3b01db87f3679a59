// Package httpapi exposes the planning services over REST with gin.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
	"github.com/sirupsen/logrus"
)

// Server bundles the services behind the REST surface.
type Server struct {
	projects  service.ProjectService
	phases    service.PhaseService
	works     service.WorkService
	tasks     service.TaskService
	todos     service.TodoService
	hierarchy service.HierarchyService
	reorder   service.ReorderService
	log       *logrus.Logger
}

func NewServer(
	projects service.ProjectService,
	phases service.PhaseService,
	works service.WorkService,
	tasks service.TaskService,
	todos service.TodoService,
	hierarchy service.HierarchyService,
	reorder service.ReorderService,
	log *logrus.Logger,
) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		projects:  projects,
		phases:    phases,
		works:     works,
		tasks:     tasks,
		todos:     todos,
		hierarchy: hierarchy,
		reorder:   reorder,
		log:       log,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	registerDateOnlyValidator()

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), cors.Default())

	r.GET("/projects", s.listProjects)
	r.POST("/projects", s.createProject)
	r.GET("/projects/:id", s.getProject)
	r.PATCH("/projects/:id", s.patchProject)
	r.DELETE("/projects/:id", s.deleteProject)
	r.GET("/projects/:id/hierarchy", s.getHierarchy)
	r.GET("/projects/:id/today-todos", s.listTodayTodos)

	r.POST("/projects/:id/phases", s.createPhase)
	r.POST("/projects/:id/works", s.createWork)
	r.POST("/projects/:id/tasks", s.createTask)
	r.POST("/projects/:id/todos", s.createTodo)

	r.PATCH("/phases/:id", s.patchPhase)
	r.PATCH("/works/:id", s.patchWork)
	r.PATCH("/tasks/:id", s.patchTask)
	r.PATCH("/todos/:id", s.patchTodo)

	r.DELETE("/phases/:id", s.deletePhase)
	r.DELETE("/works/:id", s.deleteWork)
	r.DELETE("/tasks/:id", s.deleteTask)
	r.DELETE("/todos/:id", s.deleteTodo)

	r.POST("/reorder", s.reorderScope)

	return r
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		}).Info("request")
	}
}

// registerDateOnlyValidator teaches gin's validator the calendar-day format.
// The empty string passes so tri-state patch fields can carry an explicit
// clear.
func registerDateOnlyValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, err := time.Parse(domain.DateLayout, value)
		return err == nil
	})
}
