package models

import "time"

// Message roles within a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn of a conversation. Immutable once written.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Interaction is one (message, response, intent) triple persisted for
// analytics. Append-only, best-effort.
type Interaction struct {
	ConversationID string    `json:"conversation_id"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	Intent         Intent    `json:"intent"`
	CreatedAt      time.Time `json:"created_at"`
}
