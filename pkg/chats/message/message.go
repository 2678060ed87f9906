// Package message defines the role/content pairs of a chat-completion request.
package message

import "github.com/nailen1/use-ai/pkg/chats/role"

// Message is a single role-tagged entry in a conversation. It serializes
// directly into the Chat Completions wire format.
type Message struct {
	Role    role.Role `json:"role"`
	Content string    `json:"content"`
}

// New creates a message with the given role and text.
func New(r role.Role, text string) Message {
	return Message{Role: r, Content: text}
}

// Build assembles the message list for a single prompt: the system message
// first when non-empty, then the user prompt.
func Build(system, prompt string) []Message {
	msgs := make([]Message, 0, 2)
	if system != "" {
		msgs = append(msgs, New(role.System, system))
	}

	return append(msgs, New(role.User, prompt))
}
