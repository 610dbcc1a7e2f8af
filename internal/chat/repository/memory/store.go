package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"mini-ai-chat/internal/chat"
	"mini-ai-chat/internal/chat/repository"
)

const (
	DefaultHistoryLimit = 6
	DefaultMaxSessions  = 1024
)

// Store is the in-memory History Store backend. Sessions live in a
// bounded LRU map so an unbounded stream of session ids cannot exhaust
// memory; within a session, turns are kept oldest-first with the system
// turn pinned at index 0.
type Store struct {
	mu           sync.RWMutex
	sessions     *lru.Cache[string, *session]
	historyLimit int
	systemPrompt string
}

type session struct {
	turns []chat.Turn
}

// Config configures the in-memory store.
type Config struct {
	HistoryLimit int
	MaxSessions  int
	SystemPrompt string
}

var _ repository.Store = (*Store)(nil)

// New creates a new in-memory store.
func New(cfg Config) (*Store, error) {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	cache, err := lru.New[string, *session](cfg.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to create session cache: %w", err)
	}

	return &Store{
		sessions:     cache,
		historyLimit: cfg.HistoryLimit,
		systemPrompt: cfg.SystemPrompt,
	}, nil
}

// GetOrCreate returns a copy of the session's turns, seeding the session
// with its system turn on first sight.
func (s *Store) GetOrCreate(sessionID string) []chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(sessionID)
	return copyTurns(sess.turns)
}

// Append adds a turn and trims. The session is seeded first if needed.
func (s *Store) Append(sessionID string, role chat.Role, content string) error {
	if !role.Valid() {
		return fmt.Errorf("memory: append role %q: %w", role, repository.ErrInvalidRole)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(sessionID)
	sess.turns = append(sess.turns, chat.Turn{Role: role, Content: content})
	s.trimLocked(sess)
	return nil
}

// Trim evicts the oldest non-system turns down to the retention window.
func (s *Store) Trim(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(sessionID); ok {
		s.trimLocked(sess)
	}
}

// Clear deletes the session entirely, system turn included.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Remove(sessionID)
}

// Snapshot returns a defensive copy of the session's turns, or nil for
// an unknown session.
func (s *Store) Snapshot(sessionID string) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	return copyTurns(sess.turns)
}

func (s *Store) getOrCreateLocked(sessionID string) *session {
	if sess, ok := s.sessions.Get(sessionID); ok {
		return sess
	}
	sess := &session{
		turns: []chat.Turn{{Role: chat.RoleSystem, Content: s.systemPrompt}},
	}
	s.sessions.Add(sessionID, sess)
	return sess
}

// trimLocked removes the oldest non-system turn while the non-system
// count exceeds the retention window. The system turn at index 0 is
// never removed.
func (s *Store) trimLocked(sess *session) {
	pinned := 0
	if len(sess.turns) > 0 && sess.turns[0].Role == chat.RoleSystem {
		pinned = 1
	}
	for len(sess.turns)-pinned > s.historyLimit {
		sess.turns = append(sess.turns[:pinned], sess.turns[pinned+1:]...)
	}
}

func copyTurns(turns []chat.Turn) []chat.Turn {
	out := make([]chat.Turn, len(turns))
	copy(out, turns)
	return out
}
