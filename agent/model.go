package agent

import (
	"context"
	"errors"
)

// Role is the author of a Message.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Prompt is a request to a language model: a system instruction and the
// conversation so far, the last message being the user's.
type Prompt struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Model is a chat completion backend.
type Model interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// ErrEmptyResponse is returned by the backends when the model answers nothing.
var ErrEmptyResponse = errors.New("empty response from model")

// lastUser returns the last message of p, which must come from the user.
func (p Prompt) lastUser() (Message, error) {
	if len(p.Messages) == 0 {
		return Message{}, ErrNoMessages
	}
	last := p.Messages[len(p.Messages)-1]
	if last.Role != User {
		return Message{}, ErrLastNotUser
	}
	return last, nil
}
