package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	service services.UserService
}

func NewUserHandler(service services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RegisterUser stores a user unless the email is already known
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} models.User
// @Success 200 {object} MessageResponse "User already exists"
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !result.Created {
		c.JSON(http.StatusOK, MessageResponse{Message: "user already exists"})
		return
	}
	c.JSON(http.StatusCreated, result.User)
}

// ListUsers lists every registered user
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "student, instructor or admin"
// @Success 200 {object} services.UserListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query services.ListUsersQuery
	if !h.bindQuery(c, &query) {
		return
	}
	users, err := h.service.List(c.Request.Context(), &query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Deleting user", "user_id", id, "by", callerEmail(c))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Promoting user to admin", "user_id", id, "by", callerEmail(c))

	user, err := h.service.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) MakeInstructor(c *gin.Context) {
	id := c.Param("id")
	h.LogRequest(c, "Promoting user to instructor", "user_id", id, "by", callerEmail(c))

	user, err := h.service.MakeInstructor(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Dashboard reports which role the caller holds. The role was resolved by
// the gate in front of this route.
// @Summary Dashboard flags
// @Tags users
// @Produce json
// @Param email path string true "Caller email"
// @Success 200 {object} services.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /users/dashboard/{email} [get]
func (h *UserHandler) Dashboard(c *gin.Context) {
	role, _ := RoleFromContext(c)
	c.JSON(http.StatusOK, services.NewDashboardResponse(role))
}
