package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/observability"
	"github.com/sports-camp360/camp-service/internal/services"
	"github.com/sports-camp360/camp-service/internal/utils"
	"github.com/sports-camp360/camp-service/internal/validator"
)

type HandlerManager struct {
	systemHandler     *SystemHandler
	tokenHandler      *TokenHandler
	userHandler       *UserHandler
	classHandler      *ClassHandler
	catalogHandler    *CatalogHandler
	enrollmentHandler *EnrollmentHandler
	paymentHandler    *PaymentHandler
	authMiddleware    *AuthMiddleware
	metricsHandler    http.Handler
}

type tokenCodec interface {
	TokenIssuer
	TokenVerifier
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens tokenCodec,
	roles RoleSource,
	validator *validator.Validator,
	logger utils.Logger,
	metrics *observability.Metrics,
	metricsHandler http.Handler,
) *HandlerManager {
	return &HandlerManager{
		systemHandler:     NewSystemHandler(serviceManager, logger),
		tokenHandler:      NewTokenHandler(tokens, validator, metrics, logger),
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		classHandler:      NewClassHandler(serviceManager.Class(), logger),
		catalogHandler:    NewCatalogHandler(serviceManager.Catalog(), logger),
		enrollmentHandler: NewEnrollmentHandler(serviceManager.Enrollment(), logger),
		paymentHandler:    NewPaymentHandler(serviceManager.Payment(), logger),
		authMiddleware:    NewAuthMiddleware(tokens, roles, metrics, logger),
		metricsHandler:    metricsHandler,
	}
}

// SetupRoutes sets up all API routes. Gated routes run the session check,
// then the self check where one applies, then the role gate.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	am := hm.authMiddleware
	session := am.SessionMiddleware()
	selfQuery := am.RequireSelf(FromQuery("email"))

	router.GET("/", hm.systemHandler.Root)
	router.GET("/health", hm.systemHandler.Health)
	if hm.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(hm.metricsHandler))
	}

	router.POST("/jwt", hm.tokenHandler.IssueToken)

	// Users
	router.POST("/users", hm.userHandler.RegisterUser)
	router.GET("/users", session, am.RequireAdmin(), hm.userHandler.ListUsers)
	router.DELETE("/users/:id", session, am.RequireAdmin(), hm.userHandler.DeleteUser)
	router.GET("/users/dashboard/:email", session, am.RequireSelf(FromParam("email")), am.RequireAnyRole(), hm.userHandler.Dashboard)
	router.PATCH("/make-admin/:id", session, am.RequireAdmin(), hm.userHandler.MakeAdmin)
	router.PATCH("/make-instructor/:id", session, am.RequireAdmin(), hm.userHandler.MakeInstructor)

	// Classes
	classes := router.Group("/classes")
	{
		classes.GET("", hm.classHandler.ListClasses)
		classes.GET("/all", session, am.RequireAdmin(), hm.classHandler.ListAllClasses)
		classes.GET("/my", session, selfQuery, am.RequireInstructor(), hm.classHandler.MyClasses)
		classes.POST("", session, am.RequireInstructor(), hm.classHandler.CreateClass)
		classes.PATCH("/:id", session, am.RequireInstructor(), hm.classHandler.UpdateClass)
		classes.PATCH("/:id/approve", session, am.RequireAdmin(), hm.classHandler.ApproveClass)
		classes.PATCH("/:id/deny", session, am.RequireAdmin(), hm.classHandler.DenyClass)
		classes.PATCH("/:id/feedback", session, am.RequireAdmin(), hm.classHandler.SetFeedback)
	}
	router.GET("/popular-classes", hm.classHandler.PopularClasses)

	// Catalog
	router.GET("/instructors", hm.catalogHandler.ListInstructors)
	router.GET("/popular-instructors", hm.catalogHandler.PopularInstructors)
	router.GET("/testimonials", hm.catalogHandler.ListTestimonials)

	// Enrollment
	selected := router.Group("/selected-classes", session)
	{
		selected.POST("", am.RequireStudent(), hm.enrollmentHandler.SelectClass)
		selected.GET("", selfQuery, am.RequireStudent(), hm.enrollmentHandler.ListSelections)
		selected.DELETE("/:id", am.RequireStudent(), hm.enrollmentHandler.DeleteSelection)
	}
	router.GET("/enrolled-classes", session, selfQuery, am.RequireStudent(), hm.enrollmentHandler.EnrolledClasses)

	// Payments
	router.POST("/create-payment-intent", session, am.RequireStudent(), hm.paymentHandler.CreatePaymentIntent)
	payments := router.Group("/payments", session)
	{
		payments.POST("", am.RequireStudent(), hm.paymentHandler.RecordPayment)
		payments.GET("", selfQuery, am.RequireStudent(), hm.paymentHandler.PaymentHistory)
		payments.GET("/export", am.RequireAdmin(), hm.paymentHandler.ExportPayments)
	}
}
