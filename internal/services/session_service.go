package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionService owns the postgres-backed session rows. Creating a session
// always mints a fresh sid, so a login never reuses an existing session id.
type SessionService interface {
	Create(payload auth.SessionPayload) (sid string, err error)
	Get(sid string) (*auth.SessionPayload, error)
	Destroy(sid string) error
}

type SessionServiceParams struct {
	fx.In

	DB  *gorm.DB
	TTL time.Duration `name:"session_ttl"`
}

type SessionServiceImpl struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionService(p SessionServiceParams) SessionService {
	return &SessionServiceImpl{
		db:  p.DB,
		ttl: p.TTL,
	}
}

func (s *SessionServiceImpl) Create(payload auth.SessionPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session payload: %w", err)
	}

	session := &db.Session{
		Sid:    uuid.New().String(),
		Sess:   datatypes.JSON(raw),
		Expire: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return session.Sid, nil
}

// Get resolves a session id to its payload. An expired row is deleted on
// sight and reported as not found.
func (s *SessionServiceImpl) Get(sid string) (*auth.SessionPayload, error) {
	var session db.Session
	if err := s.db.First(&session, "sid = ?", sid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !session.Expire.After(time.Now()) {
		_ = s.db.Delete(&db.Session{}, "sid = ?", sid).Error
		return nil, fmt.Errorf("session expired: %w", ErrNotFound)
	}

	var payload auth.SessionPayload
	if err := json.Unmarshal(session.Sess, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode session payload: %w", err)
	}

	return &payload, nil
}

func (s *SessionServiceImpl) Destroy(sid string) error {
	if err := s.db.Delete(&db.Session{}, "sid = ?", sid).Error; err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
