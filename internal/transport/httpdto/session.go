package httpdto

import "omar-backend/internal/services"

// CreateSessionRequest is used for POST /api/session/create.
// Every field is optional; nil means absent.
type CreateSessionRequest struct {
	UserID     *string `json:"user_id,omitempty"`
	DeviceType *string `json:"device_type,omitempty"`
	AppVersion *string `json:"app_version,omitempty"`
}

func (r CreateSessionRequest) ToInput() *services.CreateSessionInput {
	return &services.CreateSessionInput{
		UserID:     r.UserID,
		DeviceType: r.DeviceType,
		AppVersion: r.AppVersion,
	}
}

// CreateSessionResponse is returned with 201 after a session is stored.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func FromSessionCreated(out *services.SessionCreated) CreateSessionResponse {
	return CreateSessionResponse{
		SessionID: out.SessionID.String(),
		Status:    out.Status,
		Message:   "Session created successfully",
		Timestamp: Timestamp(out.CreatedAt),
	}
}
