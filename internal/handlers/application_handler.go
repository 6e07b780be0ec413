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

type ApplicationHandlerParams struct {
	fx.In

	ApplicationService services.ApplicationService
	Logger             *zap.Logger
}

type ApplicationHandler struct {
	applicationService services.ApplicationService
	logger             *zap.Logger
}

func NewApplicationHandler(p ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: p.ApplicationService,
		logger:             p.Logger,
	}
}

type applyRequest struct {
	CoverLetter    string `json:"coverLetter"`
	ProposedBudget *int   `json:"proposedBudget" binding:"omitempty,min=1"`
}

type updateApplicationRequest struct {
	Status         *db.ApplicationStatusEnum `json:"status" binding:"omitempty,oneof=pending accepted rejected withdrawn"`
	CoverLetter    *string                   `json:"coverLetter"`
	ProposedBudget *int                      `json:"proposedBudget" binding:"omitempty,min=1"`
}

// Apply handles POST /api/missions/:id/apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := auth.IdentityFrom(c)
	application, err := h.applicationService.Apply(caller, c.Param("id"), services.ApplyInput{
		CoverLetter:    req.CoverLetter,
		ProposedBudget: req.ProposedBudget,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	h.logger.Info("application created",
		zap.String("application_id", application.ID),
		zap.String("mission_id", application.MissionID),
		zap.String("freelancer_id", caller.UserID))
	c.JSON(http.StatusCreated, application)
}

// ListByMission handles GET /api/missions/:id/applications, owner only.
func (h *ApplicationHandler) ListByMission(c *gin.Context) {
	applications, err := h.applicationService.ListByMission(auth.IdentityFrom(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListMine handles GET /api/users/me/applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationService.ListByFreelancer(auth.IdentityFrom(c).UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Update handles PATCH /api/applications/:id.
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.applicationService.UpdateApplication(auth.IdentityFrom(c), c.Param("id"), services.UpdateApplicationInput{
		Status:         req.Status,
		CoverLetter:    req.CoverLetter,
		ProposedBudget: req.ProposedBudget,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
