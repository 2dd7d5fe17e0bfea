package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/auth"
	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/observability"
	"github.com/sports-camp360/camp-service/internal/utils"
)

const (
	ContextKeyClaims = "claims"
	ContextKeyRole   = "user_role"

	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type RoleSource interface {
	Resolve(ctx context.Context, email string) (models.UserRole, error)
}

// AuthMiddleware builds the session and role gates placed in front of
// protected routes.
type AuthMiddleware struct {
	verifier TokenVerifier
	roles    RoleSource
	metrics  *observability.Metrics
	logger   utils.Logger
}

func NewAuthMiddleware(verifier TokenVerifier, roles RoleSource, metrics *observability.Metrics, logger utils.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		roles:    roles,
		metrics:  metrics,
		logger:   logger,
	}
}

// SessionMiddleware verifies the bearer credential. A missing header is 401;
// any verification failure is 403. The credential itself is never logged.
func (am *AuthMiddleware) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			am.metrics.RecordAuthDecision(observability.StageSession, observability.OutcomeDenied)
			abortWithError(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		token := ""
		if fields := strings.Fields(header); len(fields) > 1 {
			token = fields[1]
		}

		claims, err := am.verifier.Verify(token)
		if err != nil {
			utils.GetLogger(c, am.logger).Debug("Token rejected", "reason", err)
			am.metrics.RecordAuthDecision(observability.StageSession, observability.OutcomeDenied)
			abortWithError(c, http.StatusForbidden, msgForbidden)
			return
		}

		am.metrics.RecordAuthDecision(observability.StageSession, observability.OutcomeAllowed)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole admits callers whose stored role is one of roles. The role is
// read from the store on every request.
func (am *AuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		role, err := am.roles.Resolve(c.Request.Context(), claims.Email)
		if err != nil {
			utils.GetLogger(c, am.logger).Error("Role lookup failed", "email", claims.Email, "error", err)
			am.metrics.RecordAuthDecision(observability.StageRole, observability.OutcomeError)
			abortWithError(c, http.StatusInternalServerError, "internal server error")
			return
		}

		if !role.In(roles...) {
			am.metrics.RecordAuthDecision(observability.StageRole, observability.OutcomeDenied)
			abortWithError(c, http.StatusForbidden, msgForbidden)
			return
		}

		am.metrics.RecordAuthDecision(observability.StageRole, observability.OutcomeAllowed)
		c.Set(ContextKeyRole, role)
		c.Next()
	}
}

func (am *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return am.RequireRole(models.RoleStudent)
}

func (am *AuthMiddleware) RequireInstructor() gin.HandlerFunc {
	return am.RequireRole(models.RoleInstructor)
}

func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return am.RequireRole(models.RoleAdmin)
}

func (am *AuthMiddleware) RequireAnyRole() gin.HandlerFunc {
	return am.RequireRole(models.RoleStudent, models.RoleInstructor, models.RoleAdmin)
}

// EmailSource extracts the email a request is about.
type EmailSource func(c *gin.Context) string

func FromQuery(name string) EmailSource {
	return func(c *gin.Context) string { return c.Query(name) }
}

func FromParam(name string) EmailSource {
	return func(c *gin.Context) string { return c.Param(name) }
}

// RequireSelf admits callers asking about their own email only. Comparison
// is exact and case-sensitive; a mismatch is 401.
func (am *AuthMiddleware) RequireSelf(source EmailSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || source(c) != claims.Email {
			am.metrics.RecordAuthDecision(observability.StageSelf, observability.OutcomeDenied)
			abortWithError(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		am.metrics.RecordAuthDecision(observability.StageSelf, observability.OutcomeAllowed)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by SessionMiddleware.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok && claims != nil
}

// RoleFromContext returns the role resolved by RequireRole.
func RoleFromContext(c *gin.Context) (models.UserRole, bool) {
	value, exists := c.Get(ContextKeyRole)
	if !exists {
		return models.RoleNone, false
	}
	role, ok := value.(models.UserRole)
	return role, ok
}

// callerEmail is the verified email of the caller. Routes using it sit
// behind SessionMiddleware.
func callerEmail(c *gin.Context) string {
	if claims, ok := ClaimsFromContext(c); ok {
		return claims.Email
	}
	return ""
}
