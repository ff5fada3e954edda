package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// MessageResponse is the body of successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps service errors onto the APIError wire shape.
func respondError(c *gin.Context, err error) {
	var (
		validation *errs.ValidationError
		notFound   *errs.NotFoundError
		forbidden  *errs.ForbiddenError
		conflict   *errs.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validation.Message, map[string]interface{}{
			"field": validation.Field,
		}))
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, notFound.Error(), map[string]interface{}{
			"entity": notFound.Entity,
		}))
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions", map[string]interface{}{
			"operation": forbidden.Operation,
			"reason":    forbidden.Reason,
		}))
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, conflict.Message, map[string]interface{}{
			"field": conflict.Field,
		}))
	case errors.Is(err, errs.ErrTransactionFailed):
		log.WithError(err).WithField("path", c.FullPath()).Error("Transaction failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrOrderTransactionFailed, "The operation was rolled back, please retry"))
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body", map[string]interface{}{
		"error": err.Error(),
	}))
}

// parseID reads a positive numeric path parameter. It writes the 400
// response itself and reports false when the value is unusable.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid "+name+" format"))
		return 0, false
	}
	return uint(id), true
}
