package chat

// Role tags one utterance in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Turn is one utterance in a conversation. Turns are appended to a
// session's history and never edited afterwards.
type Turn struct {
	Role    Role
	Content string
}

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply string
}
