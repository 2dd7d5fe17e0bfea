package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
)

type CatalogHandler struct {
	BaseHandler
	service services.CatalogService
}

func NewCatalogHandler(service services.CatalogService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *CatalogHandler) ListInstructors(c *gin.Context) {
	var query services.ListInstructorsQuery
	if !h.bindQuery(c, &query) {
		return
	}
	instructors, err := h.service.Instructors(c.Request.Context(), &query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func (h *CatalogHandler) PopularInstructors(c *gin.Context) {
	instructors, err := h.service.PopularInstructors(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.service.Testimonials(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}
