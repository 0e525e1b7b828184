package employee

import (
	"errors"
	"io"
	"net/http"

	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"
	"github.com/naveen224793-boop/assignment3/internal/shared/contextutil"
	"github.com/naveen224793-boop/assignment3/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgFetchAllFailed = "Error fetching employees"
	msgFetchFailed    = "Error fetching employee"
	msgCreateFailed   = "Error creating employee"
	msgDeleteFailed   = "Error deleting employee"
	msgUpdateFailed   = "Error updating employee"

	msgCreated = "Employee created successfully"
	msgDeleted = "Employee deleted successfully"
	msgUpdated = "Employee updated successfully"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeServiceError answers client errors with their own message and
// everything else with a 500 carrying failMessage and the raw error text.
func (h *Handler) writeServiceError(c *gin.Context, err error, failMessage string) {
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	httpErr := apperror.ToHTTP(err)

	if httpErr.Status >= http.StatusInternalServerError {
		log.Error("employee request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		message := httpErr.Message
		if message == "" {
			message = failMessage
		}
		response.Error(c, httpErr.Status, message, err)
		return
	}

	log.Warn("employee request rejected",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, nil)
}

// bindBody decodes the JSON body. An empty body decodes as {} so that it is
// reported as missing fields rather than as malformed input.
func bindBody(c *gin.Context, target any) error {
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		return apperror.ErrInvalidBody.WithErr(err)
	}
	return nil
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, msgFetchAllFailed)
		return
	}

	// The list is the one endpoint answering with a bare array.
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, msgFetchFailed)
		return
	}

	response.Success(c, http.StatusOK, "", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := bindBody(c, &req); err != nil {
		h.writeServiceError(c, err, msgCreateFailed)
		return
	}

	fields, err := ValidateCreate(req)
	if err != nil {
		h.writeServiceError(c, err, msgCreateFailed)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		h.writeServiceError(c, err, msgCreateFailed)
		return
	}

	response.Success(c, http.StatusCreated, msgCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := bindBody(c, &req); err != nil {
		h.writeServiceError(c, err, msgUpdateFailed)
		return
	}

	id, fields, err := ValidateUpdate(req)
	if err != nil {
		h.writeServiceError(c, err, msgUpdateFailed)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.writeServiceError(c, err, msgUpdateFailed)
		return
	}

	response.Success(c, http.StatusOK, msgUpdated, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	resp, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, msgDeleteFailed)
		return
	}

	response.Success(c, http.StatusOK, msgDeleted, resp)
}
