package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDeviceType = "unknown"
	DefaultAppVersion = "1.0.0"

	// StatusCreated is the status marker returned for a freshly created session.
	StatusCreated = "created"
)

// Record is the metadata kept for one client session.
type Record struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"user_id"`
	DeviceType       string    `json:"device_type"`
	AppVersion       string    `json:"app_version"`
	CreatedAt        time.Time `json:"created_at"`
	LastActivity     time.Time `json:"last_activity"`
	InteractionCount int       `json:"interaction_count"`
}

// PlaceholderUserID builds the user_<8 hex> id used when a client sends none.
func PlaceholderUserID(id uuid.UUID) string {
	return "user_" + strings.ReplaceAll(id.String(), "-", "")[:8]
}
