package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"omar-backend/internal/middleware"
	"omar-backend/internal/registry"
	"omar-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func setupRouter() (*gin.Engine, *registry.SessionRegistry) {
	gin.SetMode(gin.TestMode)
	reg := registry.NewSessionRegistry()
	h := NewSessionHandler(services.NewSessionService(reg, nil))

	r := gin.New()
	r.Use(middleware.ErrorHandler(nil))
	r.POST("/api/session/create", h.Create)
	return r, reg
}

func TestCreateSessionValid(t *testing.T) {
	r, reg := setupRouter()
	payload, _ := json.Marshal(map[string]string{"user_id": "u1"})

	req := httptest.NewRequest(http.MethodPost, "/api/session/create", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", reg.Count())
	}
}

func TestCreateSessionWithoutContentType(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/session/create", bytes.NewReader([]byte(`{"device_type":"android"}`)))
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestCreateSessionEmptyObject(t *testing.T) {
	r, reg := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/session/create", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if reg.Count() != 0 {
		t.Fatalf("registry changed: %d", reg.Count())
	}
}

func TestCreateSessionNullFieldUsesDefault(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/session/create", bytes.NewReader([]byte(`{"user_id":null,"app_version":"3.0"}`)))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}
