package auth

import (
	"errors"
	"net/http"

	"postboard/internal/pkg/googleauth"
	"postboard/internal/pkg/jwt"
	"postboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/google", h.GoogleSignIn)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", ErrMissingFields.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", err.Error())
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", err.Error())
		default:
			response.Error(c, http.StatusBadRequest, "REGISTRATION_FAILED", "failed to register")
		}
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "WRONG_CREDENTIALS", ErrWrongCredentials.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeLoginError(c, err)
		return
	}

	response.Success(c, http.StatusOK, loginResponse(result))
}

func (h *Handler) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Credential == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_ASSERTION", googleauth.ErrInvalidAssertion.Error())
		return
	}

	result, err := h.service.GoogleSignIn(c.Request.Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, googleauth.ErrInvalidAssertion):
			response.Error(c, http.StatusBadRequest, "INVALID_ASSERTION", err.Error())
		case errors.Is(err, jwt.ErrNotConfigured):
			response.Error(c, http.StatusBadRequest, "MISSING_CONFIG", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "GOOGLE_SIGNIN_FAILED", "failed to sign in")
		}
		return
	}

	response.Success(c, http.StatusOK, loginResponse(result))
}

func (h *Handler) Logout(c *gin.Context) {
	var req TokenRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.writeTokenError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "logged out")
}

func (h *Handler) Refresh(c *gin.Context) {
	var req TokenRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", "invalid token")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeTokenError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

func (h *Handler) writeLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrWrongCredentials):
		response.Error(c, http.StatusBadRequest, "WRONG_CREDENTIALS", err.Error())
	case errors.Is(err, jwt.ErrNotConfigured):
		response.Error(c, http.StatusBadRequest, "MISSING_CONFIG", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "failed to log in")
	}
}

// writeTokenError maps the logout/refresh failure modes to the wire
// contract: 400 for missing token or a revoked-but-well-signed token,
// 400 for missing configuration, 403 for a signature/expiry failure.
func (h *Handler) writeTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingToken):
		response.Error(c, http.StatusBadRequest, "MISSING_TOKEN", err.Error())
	case errors.Is(err, jwt.ErrNotConfigured):
		response.Error(c, http.StatusBadRequest, "MISSING_CONFIG", err.Error())
	case errors.Is(err, ErrTokenRevoked):
		response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", err.Error())
	case errors.Is(err, jwt.ErrInvalidToken):
		response.Error(c, http.StatusForbidden, "INVALID_TOKEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "TOKEN_OPERATION_FAILED", "token operation failed")
	}
}

func loginResponse(result *LoginResult) LoginResponse {
	return LoginResponse{
		ID:           result.User.ID,
		Email:        result.User.Email,
		Name:         result.User.Name,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
}
