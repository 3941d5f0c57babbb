package models

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a conversation with the botanist assistant.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
