package handlers

import (
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type BoostHandlerParams struct {
	fx.In

	BoostService services.BoostService
	Logger       *zap.Logger
}

type BoostHandler struct {
	boostService services.BoostService
	logger       *zap.Logger
}

func NewBoostHandler(p BoostHandlerParams) *BoostHandler {
	return &BoostHandler{
		boostService: p.BoostService,
		logger:       p.Logger,
	}
}

type boostRequest struct {
	Duration int `json:"duration" binding:"required"`
}

// BoostUser handles POST /api/admin/boost-user/:id.
func (h *BoostHandler) BoostUser(c *gin.Context) {
	var req boostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.boostService.BoostUser(auth.IdentityFrom(c), c.Param("id"), req.Duration)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.logger.Info("user boosted",
		zap.String("user_id", user.ID),
		zap.Int("duration_days", req.Duration))
	c.JSON(http.StatusOK, user)
}

// BoostMission handles POST /api/admin/boost-mission/:id.
func (h *BoostHandler) BoostMission(c *gin.Context) {
	var req boostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mission, err := h.boostService.BoostMission(auth.IdentityFrom(c), c.Param("id"), req.Duration)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.logger.Info("mission boosted",
		zap.String("mission_id", mission.ID),
		zap.Int("duration_days", req.Duration))
	c.JSON(http.StatusOK, mission)
}
