package services

import (
	"errors"
	"fmt"
	"time"

	"havjob/internal/db"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterPhoneInput is the validated payload for phone registration.
type RegisterPhoneInput struct {
	PhoneNumber string
	Password    string
	FullName    string
	Email       string
	Role        db.UserRoleEnum
}

// UpdateProfileInput lists the fields a user (or an admin, for Role) may
// change on a profile. Nil fields are left untouched.
type UpdateProfileInput struct {
	FullName    *string
	PhoneNumber *string
	Email       *string
	Role        *db.UserRoleEnum
	Bio         *string
	Skills      []string
	Location    *string
	Avatar      *string
	CvURL       *string
}

// UserService defines the interface for user-related operations
type UserService interface {
	GetUser(id string) (*db.User, error)
	GetUserByPhone(phoneNumber string) (*db.User, error)
	RegisterPhoneUser(input RegisterPhoneInput) (*db.User, error)
	VerifyPhoneLogin(phoneNumber, password string) (*db.User, error)
	UpdateProfile(id string, input UpdateProfileInput) (*db.User, error)
	ListUsers() ([]db.User, error)
	ListFreelances() ([]db.User, error)
	DeleteUser(id string) error
}

// UserServiceImpl implements UserService interface
type UserServiceImpl struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &UserServiceImpl{
		db: db,
	}
}

func (s *UserServiceImpl) GetUser(id string) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *UserServiceImpl) GetUserByPhone(phoneNumber string) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, "phone_number = ?", phoneNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("phone user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// RegisterPhoneUser creates a phone-authenticated account. The phone number
// must be unused; the password is stored bcrypt-hashed.
func (s *UserServiceImpl) RegisterPhoneUser(input RegisterPhoneInput) (*db.User, error) {
	if _, err := s.GetUserByPhone(input.PhoneNumber); err == nil {
		return nil, fmt.Errorf("phone number already in use: %w", ErrDuplicate)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = db.UserRoleFreelance
	}

	password := string(hash)
	user := &db.User{
		ID:           uuid.New().String(),
		PhoneNumber:  &input.PhoneNumber,
		Password:     &password,
		AuthMethod:   db.AuthMethodPhone,
		FullName:     input.FullName,
		Role:         role,
		ResponseRate: 100,
	}
	if input.Email != "" {
		user.Email = &input.Email
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// VerifyPhoneLogin checks phone credentials. Every failure mode returns
// ErrBadCredentials so callers cannot probe which accounts exist.
func (s *UserServiceImpl) VerifyPhoneLogin(phoneNumber, password string) (*db.User, error) {
	user, err := s.GetUserByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if user.AuthMethod != db.AuthMethodPhone || user.Password == nil {
		return nil, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(id string, input UpdateProfileInput) (*db.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.PhoneNumber != nil {
		updates["phone_number"] = *input.PhoneNumber
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.CvURL != nil {
		updates["cv_url"] = *input.CvURL
	}
	if input.Skills != nil {
		user.Skills = input.Skills
		if err := s.db.Model(user).Select("skills").Updates(user).Error; err != nil {
			return nil, fmt.Errorf("failed to update skills: %w", err)
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return s.GetUser(id)
}

func (s *UserServiceImpl) ListUsers() ([]db.User, error) {
	var users []db.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListFreelances returns freelance profiles complete enough to show: a
// freelance or dual role, a non-empty bio and at least one skill. Boosted
// profiles (expiry-aware) come first, then newest registrations.
func (s *UserServiceImpl) ListFreelances() ([]db.User, error) {
	now := time.Now()
	var users []db.User
	err := s.db.
		Where("role IN ?", []db.UserRoleEnum{db.UserRoleFreelance, db.UserRoleBoth}).
		Where("bio IS NOT NULL AND TRIM(bio) <> ''").
		Where("skills IS NOT NULL AND skills NOT IN ('', '[]', 'null')").
		Order(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                boostActiveCond + " DESC, created_at DESC",
				Vars:               []any{now},
				WithoutParentheses: true,
			},
		}).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list freelances: %w", err)
	}
	return users, nil
}

func (s *UserServiceImpl) DeleteUser(id string) error {
	result := s.db.Delete(&db.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
