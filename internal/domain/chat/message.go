package chat

import (
	"time"

	"quill-server/internal/utils/idgen"
)

// Role represents the sender of a transcript entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Message is a single transcript entry. Entries are immutable once
// appended; ordering is significant for the lifetime of a conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	IsError   bool      `json:"is_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message with a generated ID.
func NewMessage(role Role, content string) Message {
	id, err := idgen.GenerateMessageID()
	if err != nil {
		// crypto/rand read failures are not recoverable at this level;
		// an empty ID only affects display bookkeeping.
		id = ""
	}
	return Message{
		ID:        id,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return NewMessage(RoleSystem, content)
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return NewMessage(RoleAssistant, content)
}

// NewAssistantErrorMessage creates an assistant message that carries a
// failed turn. The IsError flag lets a rendering layer style it
// distinctly from regular replies.
func NewAssistantErrorMessage(content string) Message {
	msg := NewMessage(RoleAssistant, content)
	msg.IsError = true
	return msg
}
