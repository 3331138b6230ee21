package httpdto

import (
	"fmt"

	"omar-backend/internal/services"
)

type StatusResponse struct {
	Status      string         `json:"status"`
	Timestamp   string         `json:"timestamp"`
	Environment string         `json:"environment"`
	Services    ServicesStatus `json:"services"`
	Config      ConfigStatus   `json:"config"`
	Version     string         `json:"version"`
}

type ServicesStatus struct {
	OpenAI      string `json:"openai"`
	OpenAIModel string `json:"openai_model"`
	Sessions    string `json:"sessions"`
	Validations string `json:"validations"`
}

type ConfigStatus struct {
	MaxContentLengthMB   int64 `json:"max_content_length_mb"`
	SessionLifetimeHours int64 `json:"session_lifetime_hours"`
	RateLimitPerMinute   int   `json:"rate_limit_per_minute"`
}

func FromStatusReport(r services.StatusReport) StatusResponse {
	openai := "not_configured"
	if r.Services.OpenAIConfigured {
		openai = "configured"
	}
	return StatusResponse{
		Status:      r.Status,
		Timestamp:   Timestamp(r.Timestamp),
		Environment: r.Environment,
		Services: ServicesStatus{
			OpenAI:      openai,
			OpenAIModel: r.Services.OpenAIModel,
			Sessions:    fmt.Sprintf("%d active", r.Services.ActiveSessions),
			Validations: fmt.Sprintf("%d pending", r.Services.PendingValidations),
		},
		Config: ConfigStatus{
			MaxContentLengthMB:   r.Config.MaxContentLengthMB,
			SessionLifetimeHours: r.Config.SessionLifetimeHours,
			RateLimitPerMinute:   r.Config.RateLimitPerMinute,
		},
		Version: r.Version,
	}
}
