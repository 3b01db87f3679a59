package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
)

// writeError maps the service error taxonomy onto status codes: NotFound to
// 404, validation to 400 with the offending field, anything else to a
// generic 500 that leaks nothing.
func (s *Server) writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	default:
		s.log.WithError(err).Error("unhandled request failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeBindError turns gin binding failures into the same 400 shape,
// extracting the first failing field when the validator provides one.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
			"field": verrs[0].Field(),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
