package handlers

import (
	"net/http"
	"strings"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandlerParams struct {
	fx.In

	UserService       services.UserService
	SessionService    services.SessionService
	Logger            *zap.Logger
	SessionTTL        time.Duration `name:"session_ttl"`
	AdminUsername     string        `name:"admin_username"`
	AdminPasswordHash string        `name:"admin_password_hash"`
}

// AuthHandler owns session-based authentication: phone register/login, the
// current-user endpoints and the admin login. Admin credentials come from
// config; when unset the admin login is disabled.
type AuthHandler struct {
	userService       services.UserService
	sessionService    services.SessionService
	logger            *zap.Logger
	sessionTTL        time.Duration
	adminUsername     string
	adminPasswordHash string
}

func NewAuthHandler(p AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userService:       p.UserService,
		sessionService:    p.SessionService,
		logger:            p.Logger,
		sessionTTL:        p.SessionTTL,
		adminUsername:     p.AdminUsername,
		adminPasswordHash: p.AdminPasswordHash,
	}
}

type registerPhoneRequest struct {
	PhoneNumber string          `json:"phoneNumber" binding:"required,min=8"`
	Password    string          `json:"password" binding:"required,min=6"`
	FullName    string          `json:"fullName" binding:"required,min=2"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Role        db.UserRoleEnum `json:"role" binding:"omitempty,oneof=freelance client both"`
}

type loginPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateOwnProfileRequest struct {
	FullName    *string  `json:"fullName"`
	PhoneNumber *string  `json:"phoneNumber"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	Location    *string  `json:"location"`
	Avatar      *string  `json:"avatar"`
	CvURL       *string  `json:"cvUrl"`
}

// RegisterPhone handles POST /api/auth/register-phone and opens a session
// for the new account.
func (h *AuthHandler) RegisterPhone(c *gin.Context) {
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

	if err := h.openSession(c, auth.SessionPayload{UserID: user.ID}); err != nil {
		h.logger.Error("failed to open session", zap.Error(err))
		RespondError(c, err)
		return
	}

	h.logger.Info("phone user registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusCreated, user)
}

// LoginPhone handles POST /api/auth/login-phone.
func (h *AuthHandler) LoginPhone(c *gin.Context) {
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

	if err := h.openSession(c, auth.SessionPayload{UserID: user.ID}); err != nil {
		h.logger.Error("failed to open session", zap.Error(err))
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout destroys the caller's session, whichever kind it is.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(auth.SessionCookie); err == nil && sid != "" {
		if err := h.sessionService.Destroy(sid); err != nil {
			h.logger.Error("failed to destroy session", zap.Error(err))
			RespondError(c, err)
			return
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser handles GET /api/auth/user for session and bearer callers.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	caller := auth.IdentityFrom(c)
	user, err := h.userService.GetUser(caller.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateOwnProfile handles PATCH /api/auth/user/profile over the allow-listed
// field set.
func (h *AuthHandler) UpdateOwnProfile(c *gin.Context) {
	var req updateOwnProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full name cannot be empty"})
		return
	}

	caller := auth.IdentityFrom(c)
	user, err := h.userService.UpdateProfile(caller.UserID, services.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Bio:         req.Bio,
		Skills:      req.Skills,
		Location:    req.Location,
		Avatar:      req.Avatar,
		CvURL:       req.CvURL,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// AdminLogin handles POST /api/auth/admin-login against the config-supplied
// credentials.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.adminUsername == "" || req.Username != h.adminUsername ||
		bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	if err := h.openSession(c, auth.SessionPayload{IsAdmin: true, AdminUsername: req.Username}); err != nil {
		h.logger.Error("failed to open admin session", zap.Error(err))
		RespondError(c, err)
		return
	}

	h.logger.Info("admin logged in", zap.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminStatus handles GET /api/auth/admin-status.
func (h *AuthHandler) AdminStatus(c *gin.Context) {
	sid, err := c.Cookie(auth.SessionCookie)
	if err != nil || sid == "" {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}

	payload, err := h.sessionService.Get(sid)
	if err != nil || !payload.IsAdmin {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": true, "username": payload.AdminUsername})
}

// openSession mints a fresh session row and replaces the cookie, so a login
// never continues an existing session.
func (h *AuthHandler) openSession(c *gin.Context, payload auth.SessionPayload) error {
	if sid, err := c.Cookie(auth.SessionCookie); err == nil && sid != "" {
		_ = h.sessionService.Destroy(sid)
	}

	sid, err := h.sessionService.Create(payload)
	if err != nil {
		return err
	}

	c.SetCookie(auth.SessionCookie, sid, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
}
