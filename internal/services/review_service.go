package services

import (
	"errors"
	"fmt"
	"math"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReviewInput is the validated payload for posting a review.
type CreateReviewInput struct {
	MissionID  string
	RevieweeID string
	Rating     int
	Comment    string
}

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	ListForUser(revieweeID string) ([]db.Review, error)
	CreateReview(caller auth.Identity, input CreateReviewInput) (*db.Review, error)
}

// ReviewServiceImpl implements ReviewService interface
type ReviewServiceImpl struct {
	db *gorm.DB
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(db *gorm.DB) ReviewService {
	return &ReviewServiceImpl{
		db: db,
	}
}

func (s *ReviewServiceImpl) ListForUser(revieweeID string) ([]db.Review, error) {
	var reviews []db.Review
	if err := s.db.Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts the review and recomputes the reviewee's aggregate
// rating (mean of all live reviews, rounded to the nearest integer) and
// review count in the same transaction.
func (s *ReviewServiceImpl) CreateReview(caller auth.Identity, input CreateReviewInput) (*db.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalid)
	}

	var reviewee db.User
	if err := s.db.First(&reviewee, "id = ?", input.RevieweeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", input.RevieweeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load reviewee: %w", err)
	}

	review := &db.Review{
		ID:         uuid.New().String(),
		MissionID:  input.MissionID,
		ReviewerID: caller.UserID,
		RevieweeID: input.RevieweeID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var agg struct {
			Count   int64
			Average float64
		}
		if err := tx.Model(&db.Review{}).
			Select("COUNT(*) AS count, AVG(rating) AS average").
			Where("reviewee_id = ?", input.RevieweeID).
			Scan(&agg).Error; err != nil {
			return fmt.Errorf("failed to aggregate reviews: %w", err)
		}

		if err := tx.Model(&db.User{}).
			Where("id = ?", input.RevieweeID).
			Updates(map[string]any{
				"rating":       int(math.Round(agg.Average)),
				"review_count": agg.Count,
			}).Error; err != nil {
			return fmt.Errorf("failed to update reviewee rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}
