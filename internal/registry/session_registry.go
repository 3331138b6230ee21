package registry

import (
	"fmt"
	"sync"

	"omar-backend/internal/domain/session"
	omar_errors "omar-backend/pkg/errors"

	"github.com/google/uuid"
)

// SessionRegistry owns every session record for the life of the process.
// Records are never expired or evicted, so the map grows without bound.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]session.Record
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[uuid.UUID]session.Record),
	}
}

// Insert stores a record under its id. Ids are immutable once stored.
func (r *SessionRegistry) Insert(record session.Record) error {
	if record.ID == uuid.Nil {
		return fmt.Errorf("session id is nil: %w", omar_errors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[record.ID]; exists {
		return fmt.Errorf("session %s: %w", record.ID, omar_errors.ErrAlreadyExists)
	}
	r.sessions[record.ID] = record
	return nil
}

// Get returns a copy of the record so callers cannot mutate registry state.
func (r *SessionRegistry) Get(id uuid.UUID) (session.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.sessions[id]
	return record, ok
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
