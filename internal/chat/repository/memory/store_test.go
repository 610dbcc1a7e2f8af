package memory_test

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/internal/chat/repository"
	"mini-ai-chat/internal/chat/repository/memory"
)

const testPrompt = "You are a concise, helpful assistant."

func newStore(t *testing.T, limit int) *memory.Store {
	t.Helper()
	store, err := memory.New(memory.Config{
		HistoryLimit: limit,
		SystemPrompt: testPrompt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestGetOrCreate(t *testing.T) {
	store := newStore(t, 6)

	turns := store.GetOrCreate("s1")
	if len(turns) != 1 {
		t.Fatalf("expected 1 seeded turn, got %d", len(turns))
	}
	if turns[0].Role != chat.RoleSystem || turns[0].Content != testPrompt {
		t.Errorf("unexpected system turn: %+v", turns[0])
	}

	// Second call must not reseed.
	if err := store.Append("s1", chat.RoleUser, "hello"); err != nil {
		t.Fatalf("append: %v", err)
	}
	turns = store.GetOrCreate("s1")
	if len(turns) != 2 {
		t.Errorf("expected 2 turns after append, got %d", len(turns))
	}
}

func TestAppendInvalidRole(t *testing.T) {
	store := newStore(t, 6)

	err := store.Append("s1", chat.Role("narrator"), "hi")
	if !errors.Is(err, repository.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRetentionWindow(t *testing.T) {
	const limit = 4
	store := newStore(t, limit)

	for i := 0; i < 10; i++ {
		if err := store.Append("s1", chat.RoleUser, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns := store.Snapshot("s1")
	if turns[0].Role != chat.RoleSystem {
		t.Fatalf("system turn evicted: %+v", turns[0])
	}
	if got := len(turns) - 1; got != limit {
		t.Fatalf("expected %d non-system turns, got %d", limit, got)
	}

	// Survivors must be the most recent appends in original order.
	for i, turn := range turns[1:] {
		want := fmt.Sprintf("msg-%d", 10-limit+i)
		if turn.Content != want {
			t.Errorf("turn %d: expected %q, got %q", i, want, turn.Content)
		}
	}
}

func TestTrimIdempotent(t *testing.T) {
	store := newStore(t, 2)

	for i := 0; i < 5; i++ {
		store.Append("s1", chat.RoleUser, fmt.Sprintf("m%d", i))
	}

	store.Trim("s1")
	first := store.Snapshot("s1")
	store.Trim("s1")
	second := store.Snapshot("s1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("trim not idempotent: %+v vs %+v", first, second)
	}
}

func TestTrimUnknownSession(t *testing.T) {
	store := newStore(t, 2)

	// Must not create the session as a side effect.
	store.Trim("ghost")
	if turns := store.Snapshot("ghost"); turns != nil {
		t.Errorf("trim created session: %+v", turns)
	}
}

func TestClearReseeds(t *testing.T) {
	store := newStore(t, 6)

	store.Append("s1", chat.RoleUser, "before")
	store.Append("s1", chat.RoleAssistant, "reply")
	store.Clear("s1")

	if turns := store.Snapshot("s1"); turns != nil {
		t.Fatalf("expected no session after clear, got %+v", turns)
	}

	turns := store.GetOrCreate("s1")
	if len(turns) != 1 || turns[0].Role != chat.RoleSystem {
		t.Errorf("expected fresh seeded session, got %+v", turns)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := newStore(t, 6)
	store.Append("s1", chat.RoleUser, "hello")

	snap := store.Snapshot("s1")
	snap[0] = chat.Turn{Role: chat.RoleUser, Content: "tampered"}
	snap = append(snap, chat.Turn{Role: chat.RoleAssistant, Content: "injected"})

	turns := store.Snapshot("s1")
	if turns[0].Content != testPrompt {
		t.Errorf("caller mutation leaked into store: %+v", turns[0])
	}
	if len(turns) != 2 {
		t.Errorf("caller append leaked into store: %d turns", len(turns))
	}
}

func TestConcurrentAppends(t *testing.T) {
	const (
		workers = 8
		each    = 25
	)
	store := newStore(t, workers*each)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				if err := store.Append("s1", chat.RoleUser, fmt.Sprintf("w%d-%d", w, i)); err != nil {
					t.Errorf("append: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	turns := store.Snapshot("s1")
	if got := len(turns) - 1; got != workers*each {
		t.Fatalf("expected %d turns, got %d", workers*each, got)
	}

	// No duplicates or drops.
	seen := make(map[string]bool, workers*each)
	for _, turn := range turns[1:] {
		if seen[turn.Content] {
			t.Fatalf("duplicated turn %q", turn.Content)
		}
		seen[turn.Content] = true
	}
}

func TestSessionIndependence(t *testing.T) {
	store := newStore(t, 6)

	store.Append("a", chat.RoleUser, "for a")
	store.Append("b", chat.RoleUser, "for b")

	a := store.Snapshot("a")
	if len(a) != 2 || a[1].Content != "for a" {
		t.Errorf("session a corrupted: %+v", a)
	}
	b := store.Snapshot("b")
	if len(b) != 2 || b[1].Content != "for b" {
		t.Errorf("session b corrupted: %+v", b)
	}
}
