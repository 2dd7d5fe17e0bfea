package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
	"github.com/sports-camp360/camp-service/internal/validator"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   bool                       `json:"error"`
	Message string                     `json:"message"`
	Fields  validator.ValidationErrors `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs an incoming request with the request-scoped logger
func (h *BaseHandler) LogRequest(c *gin.Context, message string, args ...any) {
	utils.GetLogger(c, h.logger).Info(message, append(args, "method", c.Request.Method, "path", c.Request.URL.Path)...)
}

// LogError logs an error with the request-scoped logger
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, args ...any) {
	utils.GetLogger(c, h.logger).Error(message, append(args, "error", err, "path", c.Request.URL.Path)...)
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: true, Message: message})
}

// bindJSON decodes the body into dst, answering 400 on malformed input.
func (h *BaseHandler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.GetLogger(c, h.logger).Debug("Invalid request body", "error", err)
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *BaseHandler) bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid query parameters")
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses. Unknown errors
// are logged in full and answered with a generic 500.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: "validation failed", Fields: verrs})
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadySelected):
		abortWithError(c, http.StatusConflict, "class already selected")
	case errors.Is(err, services.ErrAlreadyEnrolled):
		abortWithError(c, http.StatusConflict, "already enrolled in class")
	case errors.Is(err, services.ErrNoSeatsAvailable):
		abortWithError(c, http.StatusConflict, "no seats available")
	case errors.Is(err, services.ErrClassNotOpen):
		abortWithError(c, http.StatusConflict, "class is not open for enrollment")
	case errors.Is(err, services.ErrConflict):
		abortWithError(c, http.StatusConflict, "resource conflict")
	case errors.Is(err, services.ErrPermission):
		abortWithError(c, http.StatusForbidden, "forbidden access")
	case errors.Is(err, services.ErrPaymentDeclined):
		abortWithError(c, http.StatusPaymentRequired, "payment declined")
	case errors.Is(err, services.ErrProviderDown):
		abortWithError(c, http.StatusBadGateway, "payment provider unavailable")
	default:
		h.LogError(c, err, "Unexpected service error")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
