package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sports-camp360/camp-service/internal/observability"
	"github.com/sports-camp360/camp-service/internal/utils"
	"github.com/sports-camp360/camp-service/internal/validator"
)

type TokenIssuer interface {
	Issue(email string) (string, error)
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type TokenHandler struct {
	BaseHandler
	issuer    TokenIssuer
	validator *validator.Validator
	metrics   *observability.Metrics
}

func NewTokenHandler(issuer TokenIssuer, validator *validator.Validator, metrics *observability.Metrics, logger utils.Logger) *TokenHandler {
	return &TokenHandler{
		BaseHandler: NewBaseHandler(logger),
		issuer:      issuer,
		validator:   validator,
		metrics:     metrics,
	}
}

// IssueToken signs a session token for the submitted identity
// @Summary Issue session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /jwt [post]
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.issuer.Issue(req.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.metrics.RecordTokenIssued()
	h.LogRequest(c, "Token issued", "email", req.Email)
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
