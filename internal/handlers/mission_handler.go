package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"havjob/internal/auth"
	"havjob/internal/db"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type MissionHandlerParams struct {
	fx.In

	MissionService services.MissionService
	Logger         *zap.Logger
}

type MissionHandler struct {
	missionService services.MissionService
	logger         *zap.Logger
}

func NewMissionHandler(p MissionHandlerParams) *MissionHandler {
	return &MissionHandler{
		missionService: p.MissionService,
		logger:         p.Logger,
	}
}

type createMissionRequest struct {
	Title          string               `json:"title" binding:"required,min=10"`
	Description    string               `json:"description" binding:"required,min=50"`
	Category       string               `json:"category" binding:"required"`
	CustomCategory string               `json:"customCategory"`
	Budget         int                  `json:"budget" binding:"required,min=1000"`
	BudgetType     string               `json:"budgetType"`
	Location       *string              `json:"location"`
	IsRemote       bool                 `json:"isRemote"`
	Duration       string               `json:"duration"`
	SkillsRequired []string             `json:"skillsRequired"`
	Status         db.MissionStatusEnum `json:"status"`
}

type updateMissionRequest struct {
	Title          *string               `json:"title" binding:"omitempty,min=10"`
	Description    *string               `json:"description" binding:"omitempty,min=50"`
	Category       *string               `json:"category"`
	CustomCategory *string               `json:"customCategory"`
	Budget         *int                  `json:"budget" binding:"omitempty,min=1000"`
	BudgetType     *string               `json:"budgetType"`
	Location       *string               `json:"location"`
	IsRemote       *bool                 `json:"isRemote"`
	Duration       *string               `json:"duration"`
	SkillsRequired []string              `json:"skillsRequired"`
	Status         *db.MissionStatusEnum `json:"status"`
}

// List handles GET /api/missions with the optional filter query parameters.
func (h *MissionHandler) List(c *gin.Context) {
	filters, err := parseMissionFilters(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	missions, err := h.missionService.ListMissions(filters)
	if err != nil {
		h.logger.Error("failed to list missions", zap.Error(err))
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, missions)
}

func (h *MissionHandler) Get(c *gin.Context) {
	mission, err := h.missionService.GetMission(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mission)
}

func (h *MissionHandler) Create(c *gin.Context) {
	var req createMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := auth.IdentityFrom(c)
	mission, err := h.missionService.CreateMission(caller, services.CreateMissionInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		CustomCategory: req.CustomCategory,
		Budget:         req.Budget,
		BudgetType:     req.BudgetType,
		Location:       req.Location,
		IsRemote:       req.IsRemote,
		Duration:       req.Duration,
		SkillsRequired: req.SkillsRequired,
		Status:         req.Status,
	})
	if err != nil {
		h.logger.Error("failed to create mission", zap.Error(err), zap.String("client_id", caller.UserID))
		RespondError(c, err)
		return
	}

	h.logger.Info("mission created", zap.String("mission_id", mission.ID), zap.String("client_id", caller.UserID))
	c.JSON(http.StatusCreated, mission)
}

func (h *MissionHandler) Update(c *gin.Context) {
	var req updateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mission, err := h.missionService.UpdateMission(auth.IdentityFrom(c), c.Param("id"), services.UpdateMissionInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		CustomCategory: req.CustomCategory,
		Budget:         req.Budget,
		BudgetType:     req.BudgetType,
		Location:       req.Location,
		IsRemote:       req.IsRemote,
		Duration:       req.Duration,
		SkillsRequired: req.SkillsRequired,
		Status:         req.Status,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mission)
}

func (h *MissionHandler) Delete(c *gin.Context) {
	if err := h.missionService.DeleteMission(auth.IdentityFrom(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListByClient handles GET /api/users/:id/missions.
func (h *MissionHandler) ListByClient(c *gin.Context) {
	missions, err := h.missionService.ListMissionsByClient(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to list client missions", zap.Error(err))
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, missions)
}

// parseMissionFilters reads the listing query parameters. Malformed numeric
// or boolean values are rejected outright rather than silently coerced.
func parseMissionFilters(c *gin.Context) (services.MissionFilters, error) {
	filters := services.MissionFilters{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	var err error
	if filters.MinBudget, err = intQuery(c, "minBudget"); err != nil {
		return filters, err
	}
	if filters.MaxBudget, err = intQuery(c, "maxBudget"); err != nil {
		return filters, err
	}
	if filters.IsRemote, err = boolQuery(c, "isRemote"); err != nil {
		return filters, err
	}
	if filters.IsOnSite, err = boolQuery(c, "isOnSite"); err != nil {
		return filters, err
	}
	if filters.IsBoosted, err = boolQuery(c, "isBoosted"); err != nil {
		return filters, err
	}

	return filters, nil
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", name, services.ErrInvalid)
	}
	return &value, nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean: %w", name, services.ErrInvalid)
	}
	return &value, nil
}
