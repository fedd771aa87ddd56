package main

import (
	"strings"
	"testing"
)

func TestGameIDShape(t *testing.T) {
	reg := newSessionRegistry(testConfig())

	seen := make(map[string]bool)

	reg.mu.Lock()
	for i := 0; i < 100; i++ {
		id := reg.newGameIDLocked()
		if len(id) != 6 {
			t.Fatalf("game ID %q has length %d, want 6", id, len(id))
		}
		for _, r := range id {
			if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r) {
				t.Fatalf("game ID %q contains %q", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("game ID %q generated twice in 100 draws", id)
		}
		seen[id] = true
	}
	reg.mu.Unlock()
}

func TestLookupAfterRemove(t *testing.T) {
	cfg := testConfig()
	reg, _, _, gameID := newPair(t, cfg)

	if _, ok := reg.lookup(gameID); !ok {
		t.Fatal("freshly created session not found")
	}

	reg.remove(gameID)

	if _, ok := reg.lookup(gameID); ok {
		t.Fatal("removed session still found")
	}
}
