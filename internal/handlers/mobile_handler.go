package handlers

import (
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MobileHandlerParams struct {
	fx.In

	UserService services.UserService
	Tokens      *auth.TokenManager
	Logger      *zap.Logger
}

// MobileHandler owns the JWT-based mobile API: the same phone accounts as the
// web flow, authenticated with an access/refresh token pair instead of a
// session cookie.
type MobileHandler struct {
	userService services.UserService
	tokens      *auth.TokenManager
	logger      *zap.Logger
}

func NewMobileHandler(p MobileHandlerParams) *MobileHandler {
	return &MobileHandler{
		userService: p.UserService,
		tokens:      p.Tokens,
		logger:      p.Logger,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register handles POST /api/mobile/register.
func (h *MobileHandler) Register(c *gin.Context) {
	var req registerPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.RegisterPhoneUser(services.RegisterPhoneInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		FullName:    req.FullName,
		Email:       req.Email,
		Role:        req.Role,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	h.respondWithTokens(c, http.StatusCreated, user.ID, user)
}

// Login handles POST /api/mobile/login.
func (h *MobileHandler) Login(c *gin.Context) {
	var req loginPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.VerifyPhoneLogin(req.PhoneNumber, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.respondWithTokens(c, http.StatusOK, user.ID, user)
}

// Refresh handles POST /api/mobile/refresh. Only a refresh token is accepted;
// an access token presented here is rejected.
func (h *MobileHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.tokens.Verify(req.RefreshToken, auth.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(claims.UserID)
	if err != nil {
		h.logger.Error("failed to generate access token", zap.Error(err))
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// CurrentUser handles GET /api/mobile/user for bearer callers.
func (h *MobileHandler) CurrentUser(c *gin.Context) {
	caller := auth.IdentityFrom(c)
	user, err := h.userService.GetUser(caller.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *MobileHandler) respondWithTokens(c *gin.Context, status int, userID string, user any) {
	accessToken, err := h.tokens.GenerateAccessToken(userID)
	if err != nil {
		h.logger.Error("failed to generate access token", zap.Error(err))
		RespondError(c, err)
		return
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(userID)
	if err != nil {
		h.logger.Error("failed to generate refresh token", zap.Error(err))
		RespondError(c, err)
		return
	}

	c.JSON(status, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
