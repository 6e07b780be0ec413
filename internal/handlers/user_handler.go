package handlers

import (
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/db"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type UserHandlerParams struct {
	fx.In

	UserService services.UserService
	Logger      *zap.Logger
}

type UserHandler struct {
	userService services.UserService
	logger      *zap.Logger
}

func NewUserHandler(p UserHandlerParams) *UserHandler {
	return &UserHandler{
		userService: p.UserService,
		logger:      p.Logger,
	}
}

type adminUpdateUserRequest struct {
	FullName    *string          `json:"fullName"`
	PhoneNumber *string          `json:"phoneNumber"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Role        *db.UserRoleEnum `json:"role" binding:"omitempty,oneof=freelance client both"`
	Bio         *string          `json:"bio"`
	Skills      []string         `json:"skills"`
	Location    *string          `json:"location"`
	Avatar      *string          `json:"avatar"`
	CvURL       *string          `json:"cvUrl"`
}

// List handles GET /api/users, admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Freelances handles GET /api/freelances.
func (h *UserHandler) Freelances(c *gin.Context) {
	freelances, err := h.userService.ListFreelances()
	if err != nil {
		h.logger.Error("failed to list freelances", zap.Error(err))
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelances)
}

// UpdateMe handles PATCH /api/users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(auth.IdentityFrom(c).UserID, services.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Role:        req.Role,
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

// AdminUpdate handles PATCH /api/admin/users/:id.
func (h *UserHandler) AdminUpdate(c *gin.Context) {
	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Param("id"), services.UpdateProfileInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Role:        req.Role,
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

// AdminDelete handles DELETE /api/admin/users/:id.
func (h *UserHandler) AdminDelete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}

	h.logger.Info("user deleted", zap.String("user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
