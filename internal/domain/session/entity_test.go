package session

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestPlaceholderUserID(t *testing.T) {
	id := uuid.MustParse("9f2b7c6e-1a4d-4f3c-9e0a-9b2d7c6f4e1a")
	if got := PlaceholderUserID(id); got != "user_9f2b7c6e" {
		t.Fatalf("unexpected placeholder %q", got)
	}

	pattern := regexp.MustCompile(`^user_[0-9a-f]{8}$`)
	for i := 0; i < 20; i++ {
		id := uuid.New()
		got := PlaceholderUserID(id)
		if !pattern.MatchString(got) {
			t.Fatalf("placeholder %q does not match %s", got, pattern)
		}
		if raw := hex.EncodeToString(id[:]); got != "user_"+raw[:8] {
			t.Fatalf("placeholder %q is not taken from %s", got, raw)
		}
	}
}
