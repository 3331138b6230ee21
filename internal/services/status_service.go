package services

import (
	"time"

	"omar-backend/config"
)

const (
	StatusHealthy = "healthy"
	APIVersion    = "1.0.0"

	modelNotSet = "not_set"
)

// Counter reports the size of a registry.
type Counter interface {
	Count() int
}

type StatusService struct {
	cfg         *config.Config
	sessions    Counter
	validations Counter
	now         func() time.Time
}

func NewStatusService(cfg *config.Config, sessions, validations Counter) *StatusService {
	return &StatusService{
		cfg:         cfg,
		sessions:    sessions,
		validations: validations,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type StatusReport struct {
	Status      string
	Timestamp   time.Time
	Environment string
	Services    ServicesStatus
	Config      ConfigStatus
	Version     string
}

type ServicesStatus struct {
	OpenAIConfigured   bool
	OpenAIModel        string
	ActiveSessions     int
	PendingValidations int
}

type ConfigStatus struct {
	MaxContentLengthMB   int64
	SessionLifetimeHours int64
	RateLimitPerMinute   int
}

// Report reads config and registry sizes. It never mutates state and never
// fails; missing configuration yields defaults.
func (s *StatusService) Report() StatusReport {
	cfg := s.cfg
	if cfg == nil {
		cfg = &config.Config{}
	}

	model := cfg.OpenAIModel
	if model == "" {
		model = modelNotSet
	}

	lifetime := cfg.SessionLifetime
	if lifetime <= 0 {
		lifetime = 8 * time.Hour
	}

	return StatusReport{
		Status:      StatusHealthy,
		Timestamp:   s.now(),
		Environment: cfg.Environment,
		Services: ServicesStatus{
			OpenAIConfigured:   cfg.OpenAIAPIKey != "",
			OpenAIModel:        model,
			ActiveSessions:     count(s.sessions),
			PendingValidations: count(s.validations),
		},
		Config: ConfigStatus{
			MaxContentLengthMB:   cfg.MaxContentLength / (1024 * 1024),
			SessionLifetimeHours: int64(lifetime / time.Hour),
			RateLimitPerMinute:   cfg.RateLimitPerMinute,
		},
		Version: APIVersion,
	}
}

func count(c Counter) int {
	if c == nil {
		return 0
	}
	return c.Count()
}
