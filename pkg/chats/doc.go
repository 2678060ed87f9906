// Package chats provides the message model sent to chat-completion endpoints.
//
// It is organized into sub-packages:
//   - [github.com/nailen1/use-ai/pkg/chats/role]: conversation roles (system, user, assistant)
//   - [github.com/nailen1/use-ai/pkg/chats/message]: role/content pairs and prompt assembly
//
// No API code is included; the openai package serializes these types directly.
package chats
