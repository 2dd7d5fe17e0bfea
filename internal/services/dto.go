package services

import (
	"github.com/sports-camp360/camp-service/internal/models"
)

// ===== USERS =====

type RegisterUserRequest struct {
	Name     string           `json:"name" validate:"omitempty,max=100"`
	Email    string           `json:"email" validate:"required,email,max=255"`
	PhotoURL *string          `json:"photo_url" validate:"omitempty,url,max=500"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=student"` // self-signup may only claim student
}

type RegisterResult struct {
	User    *models.User
	Created bool
}

type ListUsersQuery struct {
	Role string `form:"role" validate:"omitempty,user_role"`
}

type UserListResponse struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
}

type DashboardResponse struct {
	IsAdmin      bool `json:"isAdmin"`
	IsInstructor bool `json:"isInstructor"`
	IsStudent    bool `json:"isStudent"`
}

// NewDashboardResponse reports which roles role grants. Roles are exclusive,
// so at most one flag is set.
func NewDashboardResponse(role models.UserRole) *DashboardResponse {
	return &DashboardResponse{
		IsAdmin:      role == models.RoleAdmin,
		IsInstructor: role == models.RoleInstructor,
		IsStudent:    role == models.RoleStudent,
	}
}

// ===== CLASSES =====

type ListClassesQuery struct {
	Sort  string `form:"sort" validate:"omitempty,oneof=enrolled price name created_at"`
	Order string `form:"order" validate:"omitempty,oneof=asc desc"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type ListAllClassesQuery struct {
	Status string `form:"status" validate:"omitempty,class_status"`
}

type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=200"`
	Image          string  `json:"image" validate:"omitempty,url,max=500"`
	AvailableSeats int     `json:"available_seats" validate:"min=0,max=10000"`
	Price          float64 `json:"price" validate:"required,price"`
}

type UpdateClassRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Image          *string  `json:"image" validate:"omitempty,url,max=500"`
	AvailableSeats *int     `json:"available_seats" validate:"omitempty,min=0,max=10000"`
	Price          *float64 `json:"price" validate:"omitempty,price"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,max=1000"`
}

// ===== CATALOG =====

type ListInstructorsQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ===== ENROLLMENT =====

type SelectClassRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	SelectionID   string `json:"selection_id" validate:"required,uuid"`
	TransactionID string `json:"transaction_id" validate:"required,max=255"`
}
