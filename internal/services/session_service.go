package services

import (
	"context"
	"fmt"
	"time"

	"omar-backend/internal/domain/session"
	omar_errors "omar-backend/pkg/errors"
	"omar-backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore is the part of the registry the service writes to.
type SessionStore interface {
	Insert(record session.Record) error
}

type SessionService struct {
	store  SessionStore
	logger *logger.Logger
	now    func() time.Time
	newID  func() (uuid.UUID, error)
}

func NewSessionService(store SessionStore, l *logger.Logger) *SessionService {
	if l == nil {
		l = logger.NewNop()
	}
	return &SessionService{
		store:  store,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewRandom,
	}
}

// CreateSessionInput carries the optional client fields. A nil pointer means
// the field was absent from the payload.
type CreateSessionInput struct {
	UserID     *string
	DeviceType *string
	AppVersion *string
}

type SessionCreated struct {
	SessionID uuid.UUID
	UserID    string
	Status    string
	CreatedAt time.Time
}

// Create builds a record with defaults filled in and stores it. The returned
// id is present in the store when Create returns.
func (s *SessionService) Create(ctx context.Context, input *CreateSessionInput) (*SessionCreated, error) {
	if input == nil {
		return nil, fmt.Errorf("session payload required: %w", omar_errors.ErrValidation)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %v: %w", err, omar_errors.ErrInternal)
	}

	userID := valueOr(input.UserID, "")
	if input.UserID == nil {
		placeholder, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("generate user id: %v: %w", err, omar_errors.ErrInternal)
		}
		userID = session.PlaceholderUserID(placeholder)
	}

	now := s.now()
	record := session.Record{
		ID:               id,
		UserID:           userID,
		DeviceType:       valueOr(input.DeviceType, session.DefaultDeviceType),
		AppVersion:       valueOr(input.AppVersion, session.DefaultAppVersion),
		CreatedAt:        now,
		LastActivity:     now,
		InteractionCount: 0,
	}

	if err := s.store.Insert(record); err != nil {
		return nil, fmt.Errorf("store session: %v: %w", err, omar_errors.ErrInternal)
	}

	s.logger.WithContext(ctx).Info("session created",
		zap.String("session_id", id.String()),
		zap.String("user_id", userID),
	)

	return &SessionCreated{
		SessionID: id,
		UserID:    userID,
		Status:    session.StatusCreated,
		CreatedAt: now,
	}, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
