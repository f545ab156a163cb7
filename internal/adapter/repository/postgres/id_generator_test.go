package postgres

import (
	"testing"
	"time"
)

func TestULIDGeneratorProducesUniqueOrderedIDs(t *testing.T) {
	gen := NewULIDGenerator()

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if len(id) != 26 {
			t.Fatalf("expected 26 character ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true

		if prev != "" && id < prev {
			t.Fatalf("expected ids to sort by creation time, %s came after %s", id, prev)
		}
		prev = id

		// ULIDs within the same millisecond are ordered by entropy; a tiny
		// sleep keeps the timestamp component advancing.
		if i%10 == 9 {
			time.Sleep(time.Millisecond)
		}
	}
}
