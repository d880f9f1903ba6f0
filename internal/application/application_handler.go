package application

import (
	"net/http"
	"strconv"

	applicationerrors "github.com/mexanik619/College-Placement-Website/internal/application/errors"
	"github.com/mexanik619/College-Placement-Website/internal/shared/apperror"
	"github.com/mexanik619/College-Placement-Website/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("application request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create application validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(applicationerrors.ErrMissingIDs)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"success":        true,
		"application_id": resp.ApplicationID,
	})
}

// GetDetails serves the recruiter triage list. The optional status query
// param narrows the list server-side with the same filter the dashboard
// applies in memory; unknown values are rejected, not silently empty.
func (h *Handler) GetDetails(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != StatusFilterAll && !IsValidStatus(status) {
		h.writeServiceError(c, applicationerrors.ErrUnknownStatus)
		return
	}

	details, err := h.service.ListDetails(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, FilterByStatus(details, status))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.writeServiceError(c, applicationerrors.ErrInvalidApplicationID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update application status validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(applicationerrors.ErrMissingStatus)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), uint(id), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
