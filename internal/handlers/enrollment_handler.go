package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
)

type EnrollmentHandler struct {
	BaseHandler
	service services.EnrollmentService
}

func NewEnrollmentHandler(service services.EnrollmentService, logger utils.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SelectClass puts a class in the calling student's cart
// @Summary Select class
// @Tags enrollment
// @Accept json
// @Produce json
// @Success 201 {object} models.Selection
// @Failure 409 {object} ErrorResponse "Already selected, already enrolled or full"
// @Router /selected-classes [post]
func (h *EnrollmentHandler) SelectClass(c *gin.Context) {
	var req services.SelectClassRequest
	if !h.bindJSON(c, &req) {
		return
	}
	selection, err := h.service.Select(c.Request.Context(), callerEmail(c), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, selection)
}

func (h *EnrollmentHandler) ListSelections(c *gin.Context) {
	selections, err := h.service.Selections(c.Request.Context(), callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, selections)
}

func (h *EnrollmentHandler) DeleteSelection(c *gin.Context) {
	if err := h.service.RemoveSelection(c.Request.Context(), c.Param("id"), callerEmail(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "selection deleted"})
}

func (h *EnrollmentHandler) EnrolledClasses(c *gin.Context) {
	classes, err := h.service.EnrolledClasses(c.Request.Context(), callerEmail(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}
