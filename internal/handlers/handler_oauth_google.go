package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in with an ID token. The frontend
// obtains the ID token via Google's client libraries and posts it here; we
// validate it and issue our own JWT for an already-registered employee.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	employeeService    portssvc.EmployeeSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	employeeService portssvc.EmployeeSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		employeeService:    employeeService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in route.
func registerGoogleOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.Employee, services.Token)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/google/idtoken", h.SignInWithIDToken)
	}
}

// SignInWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates a Google ID token and returns an application JWT for the matching employee.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idtoken body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/idtoken [post]
func (h *GoogleOAuthHandler) SignInWithIDToken(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		logger.Error("Email claim missing from Google ID token payload")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	// Google sign-in only links to an existing account; onboarding still
	// goes through /auth/register so we collect the date of birth.
	employee, err := h.employeeService.GetEmployeeByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account for " + email + ", please register first"})
			return
		}
		respondWithError(c, logger, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, employee)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Employee: dto.ToEmployeeResponse(employee),
	})
}
