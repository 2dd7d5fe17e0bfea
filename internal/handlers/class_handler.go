package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
)

type ClassHandler struct {
	BaseHandler
	service services.ClassService
}

func NewClassHandler(service services.ClassService, logger utils.Logger) *ClassHandler {
	return &ClassHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListClasses lists approved classes
// @Summary List approved classes
// @Tags classes
// @Produce json
// @Param sort query string false "enrolled, price, name or created_at"
// @Param order query string false "asc or desc"
// @Param limit query int false "Maximum number of classes"
// @Success 200 {array} models.Class
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	var query services.ListClassesQuery
	if !h.bindQuery(c, &query) {
		return
	}
	classes, err := h.service.ListApproved(c.Request.Context(), &query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) PopularClasses(c *gin.Context) {
	classes, err := h.service.Popular(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListAllClasses lists every class for moderation, optionally by status
// @Summary List all classes
// @Tags classes
// @Produce json
// @Param status query string false "pending, approved or denied"
// @Success 200 {array} models.Class
// @Failure 400 {object} ErrorResponse
// @Router /classes/all [get]
func (h *ClassHandler) ListAllClasses(c *gin.Context) {
	var query services.ListAllClassesQuery
	if !h.bindQuery(c, &query) {
		return
	}
	classes, err := h.service.ListAll(c.Request.Context(), &query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) MyClasses(c *gin.Context) {
	classes, err := h.service.ListByInstructor(c.Request.Context(), callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass adds a pending class owned by the calling instructor
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Success 201 {object} models.Class
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req services.CreateClassRequest
	if !h.bindJSON(c, &req) {
		return
	}
	class, err := h.service.Create(c.Request.Context(), &req, callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req services.UpdateClassRequest
	if !h.bindJSON(c, &req) {
		return
	}
	class, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) ApproveClass(c *gin.Context) {
	class, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DenyClass(c *gin.Context) {
	class, err := h.service.Deny(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) SetFeedback(c *gin.Context) {
	var req services.FeedbackRequest
	if !h.bindJSON(c, &req) {
		return
	}
	class, err := h.service.SetFeedback(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}
