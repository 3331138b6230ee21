package registry

import (
	"errors"
	"sync"
	"testing"
	"time"

	"omar-backend/internal/domain/session"
	omar_errors "omar-backend/pkg/errors"

	"github.com/google/uuid"
)

func newRecord() session.Record {
	now := time.Now().UTC()
	return session.Record{
		ID:           uuid.New(),
		UserID:       "u1",
		DeviceType:   session.DefaultDeviceType,
		AppVersion:   session.DefaultAppVersion,
		CreatedAt:    now,
		LastActivity: now,
	}
}

func TestInsertAndGet(t *testing.T) {
	reg := NewSessionRegistry()
	record := newRecord()

	if err := reg.Insert(record); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected count 1, got %d", reg.Count())
	}

	got, ok := reg.Get(record.ID)
	if !ok {
		t.Fatal("expected record to be present")
	}
	if got.UserID != "u1" {
		t.Fatalf("unexpected user id %q", got.UserID)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	reg := NewSessionRegistry()
	record := newRecord()
	if err := reg.Insert(record); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, _ := reg.Get(record.ID)
	got.InteractionCount = 42

	again, _ := reg.Get(record.ID)
	if again.InteractionCount != 0 {
		t.Fatalf("registry state mutated through copy: %d", again.InteractionCount)
	}
}

func TestInsertDuplicateRejected(t *testing.T) {
	reg := NewSessionRegistry()
	record := newRecord()
	if err := reg.Insert(record); err != nil {
		t.Fatalf("insert: %v", err)
	}

	record.UserID = "someone-else"
	err := reg.Insert(record)
	if !errors.Is(err, omar_errors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, _ := reg.Get(record.ID)
	if got.UserID != "u1" {
		t.Fatalf("existing record overwritten: %q", got.UserID)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected count 1, got %d", reg.Count())
	}
}

func TestInsertNilIDRejected(t *testing.T) {
	reg := NewSessionRegistry()
	record := newRecord()
	record.ID = uuid.Nil

	if err := reg.Insert(record); !errors.Is(err, omar_errors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Count())
	}
}

func TestGetMissing(t *testing.T) {
	reg := NewSessionRegistry()
	if _, ok := reg.Get(uuid.New()); ok {
		t.Fatal("expected missing record")
	}
}

func TestConcurrentInsertAndCount(t *testing.T) {
	reg := NewSessionRegistry()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := reg.Insert(newRecord()); err != nil {
				t.Errorf("insert: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if c := reg.Count(); c < 0 || c > n {
				t.Errorf("count out of range: %d", c)
			}
		}()
	}
	wg.Wait()

	if reg.Count() != n {
		t.Fatalf("expected %d records, got %d", n, reg.Count())
	}
}

func TestPendingValidationsStartsEmpty(t *testing.T) {
	if c := NewPendingValidations().Count(); c != 0 {
		t.Fatalf("expected 0 pending, got %d", c)
	}
}
