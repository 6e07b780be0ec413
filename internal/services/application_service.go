package services

import (
	"errors"
	"fmt"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplyInput is the validated payload of a freelancer's bid.
type ApplyInput struct {
	CoverLetter    string
	ProposedBudget *int
}

// UpdateApplicationInput lists the fields either party may change. Nil fields
// are left untouched.
type UpdateApplicationInput struct {
	Status         *db.ApplicationStatusEnum
	CoverLetter    *string
	ProposedBudget *int
}

// ApplicationService defines the interface for application-related operations
type ApplicationService interface {
	GetApplication(id string) (*db.Application, error)
	ListByMission(caller auth.Identity, missionID string) ([]db.Application, error)
	ListByFreelancer(freelancerID string) ([]db.Application, error)
	Apply(caller auth.Identity, missionID string, input ApplyInput) (*db.Application, error)
	UpdateApplication(caller auth.Identity, id string, input UpdateApplicationInput) (*db.Application, error)
}

// ApplicationServiceImpl implements ApplicationService interface
type ApplicationServiceImpl struct {
	db *gorm.DB
}

// NewApplicationService creates a new instance of ApplicationService
func NewApplicationService(db *gorm.DB) ApplicationService {
	return &ApplicationServiceImpl{
		db: db,
	}
}

func (s *ApplicationServiceImpl) GetApplication(id string) (*db.Application, error) {
	var application db.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &application, nil
}

// ListByMission returns a mission's applications, newest first. Only the
// mission owner may see them.
func (s *ApplicationServiceImpl) ListByMission(caller auth.Identity, missionID string) ([]db.Application, error) {
	mission, err := s.loadMission(missionID)
	if err != nil {
		return nil, err
	}
	if mission.ClientID != caller.UserID {
		return nil, fmt.Errorf("mission %s belongs to another client: %w", missionID, ErrForbidden)
	}

	var applications []db.Application
	if err := s.db.Where("mission_id = ?", missionID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) ListByFreelancer(freelancerID string) ([]db.Application, error) {
	var applications []db.Application
	if err := s.db.Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// Apply creates the caller's bid on a mission. A freelancer gets one live
// application per mission: a second bid is rejected unless the previous one
// was withdrawn. The mission's applicant counter is incremented in the same
// transaction with a single atomic UPDATE; nothing ever decrements it.
func (s *ApplicationServiceImpl) Apply(caller auth.Identity, missionID string, input ApplyInput) (*db.Application, error) {
	mission, err := s.loadMission(missionID)
	if err != nil {
		return nil, err
	}
	if mission.ClientID == caller.UserID {
		return nil, fmt.Errorf("cannot apply to your own mission: %w", ErrInvalid)
	}

	var existing int64
	if err := s.db.Model(&db.Application{}).
		Where("mission_id = ? AND freelancer_id = ? AND status <> ?",
			missionID, caller.UserID, db.ApplicationStatusWithdrawn).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("already applied to this mission: %w", ErrDuplicate)
	}

	application := &db.Application{
		ID:             uuid.New().String(),
		MissionID:      missionID,
		FreelancerID:   caller.UserID,
		CoverLetter:    input.CoverLetter,
		ProposedBudget: input.ProposedBudget,
		Status:         db.ApplicationStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		if err := tx.Model(&db.Mission{}).
			Where("id = ?", missionID).
			Update("applicants_count", gorm.Expr("applicants_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment applicant count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}

// UpdateApplication lets the mission owner or the applicant change an
// application; anyone else is refused.
func (s *ApplicationServiceImpl) UpdateApplication(caller auth.Identity, id string, input UpdateApplicationInput) (*db.Application, error) {
	application, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}

	mission, err := s.loadMission(application.MissionID)
	if err != nil {
		return nil, err
	}
	if mission.ClientID != caller.UserID && application.FreelancerID != caller.UserID {
		return nil, fmt.Errorf("application %s: %w", id, ErrForbidden)
	}

	updates := map[string]any{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.CoverLetter != nil {
		updates["cover_letter"] = *input.CoverLetter
	}
	if input.ProposedBudget != nil {
		updates["proposed_budget"] = *input.ProposedBudget
	}

	if len(updates) > 0 {
		if err := s.db.Model(application).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update application: %w", err)
		}
	}

	return s.GetApplication(id)
}

func (s *ApplicationServiceImpl) loadMission(id string) (*db.Mission, error) {
	var mission db.Mission
	if err := s.db.First(&mission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load mission: %w", err)
	}
	return &mission, nil
}
