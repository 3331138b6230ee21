package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"omar-backend/internal/services"
	"omar-backend/internal/transport/httpdto"
	omar_errors "omar-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service *services.SessionService
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /api/session/create.
func (h *SessionHandler) Create(c *gin.Context) {
	req, err := decodeCreateSession(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.FromSessionCreated(out))
}

// decodeCreateSession requires a non-empty JSON object. Missing fields are
// allowed; fields of the wrong type are not.
func decodeCreateSession(c *gin.Context) (*httpdto.CreateSessionRequest, error) {
	if ct := c.ContentType(); ct != "" && ct != gin.MIMEJSON && !strings.HasSuffix(ct, "+json") {
		return nil, fmt.Errorf("unsupported content type %q: %w", ct, omar_errors.ErrValidation)
	}
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil, fmt.Errorf("request body required: %w", omar_errors.ErrValidation)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("read body: %v: %w", err, omar_errors.ErrTooLarge)
		}
		return nil, fmt.Errorf("read body: %v: %w", err, omar_errors.ErrValidation)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("request body required: %w", omar_errors.ErrValidation)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode body: %v: %w", err, omar_errors.ErrValidation)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("request body is empty: %w", omar_errors.ErrValidation)
	}

	var req httpdto.CreateSessionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode session request: %v: %w", err, omar_errors.ErrValidation)
	}
	return &req, nil
}
