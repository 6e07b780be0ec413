package services

import (
	"fmt"
	"strings"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// boostActiveCond is the authoritative definition of "currently boosted":
// the flag is set and the expiry, when present, lies in the future. Every
// read path that filters or orders on boost state uses this condition, so an
// expired boost stops counting even while the stored flag is still true.
const boostActiveCond = "(is_boosted AND (boost_expires_at IS NULL OR boost_expires_at > ?))"

// MissionFilters carries the optional criteria of the mission listing. A nil
// pointer or empty string means "do not filter on this dimension".
// Category and Location are comma-separated lists matched with OR semantics
// inside the field; all supplied fields combine with AND.
type MissionFilters struct {
	Category  string
	MinBudget *int
	MaxBudget *int
	Location  string
	IsRemote  *bool
	IsOnSite  *bool
	IsBoosted *bool
	Status    string
	Search    string
}

// CreateMissionInput is the validated payload for publishing a mission.
type CreateMissionInput struct {
	Title          string
	Description    string
	Category       string
	CustomCategory string
	Budget         int
	BudgetType     string
	Location       *string
	IsRemote       bool
	Duration       string
	SkillsRequired []string
	Status         db.MissionStatusEnum
}

// UpdateMissionInput lists the fields a mission owner may change. Nil fields
// are left untouched.
type UpdateMissionInput struct {
	Title          *string
	Description    *string
	Category       *string
	CustomCategory *string
	Budget         *int
	BudgetType     *string
	Location       *string
	IsRemote       *bool
	Duration       *string
	SkillsRequired []string
	Status         *db.MissionStatusEnum
}

// MissionService defines the interface for mission-related operations
type MissionService interface {
	GetMission(id string) (*db.Mission, error)
	ListMissions(filters MissionFilters) ([]db.Mission, error)
	ListMissionsByClient(clientID string) ([]db.Mission, error)
	CreateMission(caller auth.Identity, input CreateMissionInput) (*db.Mission, error)
	UpdateMission(caller auth.Identity, id string, input UpdateMissionInput) (*db.Mission, error)
	DeleteMission(caller auth.Identity, id string) error
}

// MissionServiceImpl implements MissionService interface
type MissionServiceImpl struct {
	db *gorm.DB
}

// NewMissionService creates a new instance of MissionService
func NewMissionService(db *gorm.DB) MissionService {
	return &MissionServiceImpl{
		db: db,
	}
}

func (s *MissionServiceImpl) GetMission(id string) (*db.Mission, error) {
	var mission db.Mission
	if err := s.db.First(&mission, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}
	return &mission, nil
}

// ListMissions returns the missions matching every supplied criterion,
// boosted-first then newest-first. Boost ordering and the isBoosted filter
// both use the expiry-aware condition, evaluated against a single clock
// reading so filter and sort agree.
func (s *MissionServiceImpl) ListMissions(filters MissionFilters) ([]db.Mission, error) {
	now := time.Now()
	query := s.db.Model(&db.Mission{})

	if filters.Category != "" {
		query = query.Where("category IN ?", splitList(filters.Category))
	}
	if filters.MinBudget != nil {
		query = query.Where("budget >= ?", *filters.MinBudget)
	}
	if filters.MaxBudget != nil {
		query = query.Where("budget <= ?", *filters.MaxBudget)
	}
	if filters.Location != "" {
		// IN never matches a NULL location, which is intended: missions
		// without a location are excluded by any location filter.
		query = query.Where("location IN ?", splitList(filters.Location))
	}
	if filters.IsRemote != nil {
		query = query.Where("is_remote = ?", *filters.IsRemote)
	}
	if filters.IsOnSite != nil {
		// on-site is the inverse of the remote flag, not a field of its own
		query = query.Where("is_remote = ?", !*filters.IsOnSite)
	}
	if filters.IsBoosted != nil {
		if *filters.IsBoosted {
			query = query.Where(boostActiveCond, now)
		} else {
			query = query.Where("NOT "+boostActiveCond, now)
		}
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var missions []db.Mission
	err := query.Order(clause.OrderBy{
		Expression: clause.Expr{
			SQL:                boostActiveCond + " DESC, created_at DESC",
			Vars:               []any{now},
			WithoutParentheses: true,
		},
	}).Find(&missions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return missions, nil
}

func (s *MissionServiceImpl) ListMissionsByClient(clientID string) ([]db.Mission, error) {
	var missions []db.Mission
	if err := s.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&missions).Error; err != nil {
		return nil, fmt.Errorf("failed to list client missions: %w", err)
	}
	return missions, nil
}

func (s *MissionServiceImpl) CreateMission(caller auth.Identity, input CreateMissionInput) (*db.Mission, error) {
	budgetType := input.BudgetType
	if budgetType == "" {
		budgetType = "fixed"
	}
	status := input.Status
	if status == "" {
		status = db.MissionStatusOpen
	}

	mission := &db.Mission{
		ID:             uuid.New().String(),
		ClientID:       caller.UserID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		CustomCategory: input.CustomCategory,
		Budget:         input.Budget,
		BudgetType:     budgetType,
		Location:       input.Location,
		IsRemote:       input.IsRemote,
		Duration:       input.Duration,
		SkillsRequired: input.SkillsRequired,
		Status:         status,
	}

	if err := s.db.Create(mission).Error; err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	return mission, nil
}

func (s *MissionServiceImpl) UpdateMission(caller auth.Identity, id string, input UpdateMissionInput) (*db.Mission, error) {
	mission, err := s.GetMission(id)
	if err != nil {
		return nil, err
	}
	if mission.ClientID != caller.UserID {
		return nil, fmt.Errorf("mission %s belongs to another client: %w", id, ErrForbidden)
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.CustomCategory != nil {
		updates["custom_category"] = *input.CustomCategory
	}
	if input.Budget != nil {
		updates["budget"] = *input.Budget
	}
	if input.BudgetType != nil {
		updates["budget_type"] = *input.BudgetType
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.IsRemote != nil {
		updates["is_remote"] = *input.IsRemote
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.SkillsRequired != nil {
		mission.SkillsRequired = input.SkillsRequired
		if err := s.db.Model(mission).Select("skills_required").Updates(mission).Error; err != nil {
			return nil, fmt.Errorf("failed to update mission skills: %w", err)
		}
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(mission).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update mission: %w", err)
		}
	}

	return s.GetMission(id)
}

func (s *MissionServiceImpl) DeleteMission(caller auth.Identity, id string) error {
	mission, err := s.GetMission(id)
	if err != nil {
		return err
	}
	if mission.ClientID != caller.UserID {
		return fmt.Errorf("mission %s belongs to another client: %w", id, ErrForbidden)
	}

	if err := s.db.Delete(&db.Mission{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}

// splitList turns a comma-separated filter value into its trimmed, non-empty
// elements.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
