// Package role defines the sender roles used in chat-completion requests.
package role

// Role identifies who authored a message.
type Role string

const (
	System Role = "system"
	User   Role = "user"
)

func (r Role) String() string {
	return string(r)
}
