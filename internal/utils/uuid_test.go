package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GenerateUnique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("generated id %q is not a uuid: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Errorf("expected uuid v7, got v%d", parsed.Version())
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
