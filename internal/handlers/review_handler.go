package handlers

import (
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ReviewHandlerParams struct {
	fx.In

	ReviewService services.ReviewService
	Logger        *zap.Logger
}

type ReviewHandler struct {
	reviewService services.ReviewService
	logger        *zap.Logger
}

func NewReviewHandler(p ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewService: p.ReviewService,
		logger:        p.Logger,
	}
}

type createReviewRequest struct {
	MissionID  string `json:"missionId" binding:"required"`
	RevieweeID string `json:"revieweeId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"omitempty,min=10"`
}

// ListForUser handles GET /api/users/:id/reviews.
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	reviews, err := h.reviewService.ListForUser(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := auth.IdentityFrom(c)
	review, err := h.reviewService.CreateReview(caller, services.CreateReviewInput{
		MissionID:  req.MissionID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	h.logger.Info("review created",
		zap.String("review_id", review.ID),
		zap.String("reviewee_id", review.RevieweeID),
		zap.String("reviewer_id", caller.UserID))
	c.JSON(http.StatusCreated, review)
}
