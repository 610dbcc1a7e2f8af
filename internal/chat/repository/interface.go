package repository

import "mini-ai-chat/internal/chat"

// Store owns all per-session conversation state. Implementations must be
// safe for concurrent use; callers needing assemble-then-commit atomicity
// for a single session hold their own per-session lock around the calls.
type Store interface {
	// GetOrCreate returns the session's current turns, seeding a new
	// session with a single system turn if the id is unseen.
	GetOrCreate(sessionID string) []chat.Turn

	// Append adds a turn and trims the session to the retention window.
	// The session is seeded first if needed. Returns ErrInvalidRole for
	// a role outside the three known values.
	Append(sessionID string, role chat.Role, content string) error

	// Trim evicts the oldest non-system turns until the non-system count
	// is within the retention window. Idempotent; the system turn is
	// never evicted.
	Trim(sessionID string)

	// Clear deletes the session entirely, system turn included.
	Clear(sessionID string)

	// Snapshot returns an order-preserving copy of the session's turns.
	// The copy never aliases store-internal state. Returns nil for an
	// unknown session without creating it.
	Snapshot(sessionID string) []chat.Turn
}
