package services

import (
	"errors"
	"fmt"

	"havjob/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteService defines the interface for favorite-related operations
type FavoriteService interface {
	ListByUser(userID string) ([]db.Favorite, error)
	Add(userID, missionID string) (*db.Favorite, error)
	Remove(userID, missionID string) error
	IsFavorite(userID, missionID string) (bool, error)
}

// FavoriteServiceImpl implements FavoriteService interface
type FavoriteServiceImpl struct {
	db *gorm.DB
}

// NewFavoriteService creates a new instance of FavoriteService
func NewFavoriteService(db *gorm.DB) FavoriteService {
	return &FavoriteServiceImpl{
		db: db,
	}
}

func (s *FavoriteServiceImpl) ListByUser(userID string) ([]db.Favorite, error) {
	var favorites []db.Favorite
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Add marks a mission as a favorite of the user. The mission must exist and
// must not already be favorited.
func (s *FavoriteServiceImpl) Add(userID, missionID string) (*db.Favorite, error) {
	var mission db.Mission
	if err := s.db.First(&mission, "id = ?", missionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mission %s: %w", missionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}

	already, err := s.IsFavorite(userID, missionID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fmt.Errorf("mission already in favorites: %w", ErrDuplicate)
	}

	favorite := &db.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		MissionID: missionID,
	}
	if err := s.db.Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return favorite, nil
}

// Remove is idempotent: removing an absent favorite is not an error.
func (s *FavoriteServiceImpl) Remove(userID, missionID string) error {
	if err := s.db.Delete(&db.Favorite{}, "user_id = ? AND mission_id = ?", userID, missionID).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (s *FavoriteServiceImpl) IsFavorite(userID, missionID string) (bool, error) {
	var count int64
	if err := s.db.Model(&db.Favorite{}).
		Where("user_id = ? AND mission_id = ?", userID, missionID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}
