package registry

import (
	"sync"

	"omar-backend/internal/domain/validation"
)

// PendingValidations tracks content awaiting validation. It has no write
// path yet; only its size is reported.
type PendingValidations struct {
	mu      sync.RWMutex
	pending map[string]validation.Pending
}

func NewPendingValidations() *PendingValidations {
	return &PendingValidations{
		pending: make(map[string]validation.Pending),
	}
}

func (p *PendingValidations) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pending)
}
