package core

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies a conversation turn.
type Role string

const (
	// RoleUser marks a turn authored by the requesting user.
	RoleUser Role = "user"
	// RoleSpecialistAnswer marks a turn produced by a specialist or the
	// synthesizer.
	RoleSpecialistAnswer Role = "specialist-answer"
)

// Message is one turn in a conversation. After being appended to a
// Conversation it must be treated as immutable; history is append-only.
//
// Origin identifies the specialist that produced the turn and is empty for
// user turns.
type Message struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Origin    Specialist `json:"origin,omitempty"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewUserMessage creates a user-authored message.
func NewUserMessage(content string) Message {
	return Message{
		ID:        NewID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewSpecialistMessage creates a specialist-answer message tagged with the
// producing specialist.
func NewSpecialistMessage(origin Specialist, content string) Message {
	return Message{
		ID:        NewID(),
		Role:      RoleSpecialistAnswer,
		Origin:    origin,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewID generates a unique identifier for messages and runs.
func NewID() string { return uuid.NewString() }
