package services

import (
	"errors"
	"fmt"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// boostPrices maps the allowed boost durations (days) to their price in FCFA.
// The key set is also the validation of the duration itself.
var boostPrices = map[int]int{
	1:  5000,
	3:  12000,
	7:  25000,
	15: 45000,
	30: 80000,
}

// BoostService applies time-bounded visibility boosts to users and missions.
// Activation is an administrative action; checkout happens off-platform.
type BoostService interface {
	BoostUser(caller auth.Identity, userID string, durationDays int) (*db.User, error)
	BoostMission(caller auth.Identity, missionID string, durationDays int) (*db.Mission, error)
}

// BoostServiceImpl implements BoostService interface
type BoostServiceImpl struct {
	db *gorm.DB
}

// NewBoostService creates a new instance of BoostService
func NewBoostService(db *gorm.DB) BoostService {
	return &BoostServiceImpl{
		db: db,
	}
}

func (s *BoostServiceImpl) BoostUser(caller auth.Identity, userID string, durationDays int) (*db.User, error) {
	if err := s.authorize(caller, durationDays); err != nil {
		return nil, err
	}

	var user db.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	expiresAt := time.Now().AddDate(0, 0, durationDays)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(map[string]any{
			"is_boosted":       true,
			"boost_expires_at": expiresAt,
		}).Error; err != nil {
			return fmt.Errorf("failed to boost user: %w", err)
		}
		return s.recordBoost(tx, user.ID, user.ID, db.BoostTargetUser, durationDays, expiresAt)
	})
	if err != nil {
		return nil, err
	}

	user.IsBoosted = true
	user.BoostExpiresAt = &expiresAt
	return &user, nil
}

func (s *BoostServiceImpl) BoostMission(caller auth.Identity, missionID string, durationDays int) (*db.Mission, error) {
	if err := s.authorize(caller, durationDays); err != nil {
		return nil, err
	}

	var mission db.Mission
	if err := s.db.First(&mission, "id = ?", missionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mission %s: %w", missionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}

	expiresAt := time.Now().AddDate(0, 0, durationDays)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&mission).Updates(map[string]any{
			"is_boosted":       true,
			"boost_expires_at": expiresAt,
		}).Error; err != nil {
			return fmt.Errorf("failed to boost mission: %w", err)
		}
		return s.recordBoost(tx, mission.ClientID, mission.ID, db.BoostTargetMission, durationDays, expiresAt)
	})
	if err != nil {
		return nil, err
	}

	mission.IsBoosted = true
	mission.BoostExpiresAt = &expiresAt
	return &mission, nil
}

func (s *BoostServiceImpl) authorize(caller auth.Identity, durationDays int) error {
	if !caller.IsAdmin {
		return fmt.Errorf("boost requires admin privilege: %w", ErrForbidden)
	}
	if _, ok := boostPrices[durationDays]; !ok {
		return fmt.Errorf("invalid duration, accepted values: 1, 3, 7, 15, 30 days: %w", ErrInvalid)
	}
	return nil
}

func (s *BoostServiceImpl) recordBoost(tx *gorm.DB, userID, targetID string, targetType db.BoostTargetEnum, durationDays int, expiresAt time.Time) error {
	boost := &db.Boost{
		ID:            uuid.New().String(),
		UserID:        userID,
		TargetID:      targetID,
		TargetType:    targetType,
		Duration:      durationDays,
		Price:         boostPrices[durationDays],
		PaymentStatus: "manual",
		ExpiresAt:     expiresAt,
	}
	if err := tx.Create(boost).Error; err != nil {
		return fmt.Errorf("failed to record boost: %w", err)
	}
	return nil
}
