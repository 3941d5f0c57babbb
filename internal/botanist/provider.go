package botanist

import (
	"context"

	"github.com/leafyapp/leafy/internal/models"
)

// Source is a citation backing part of a chat reply.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatReply is the assistant's answer plus any grounding citations.
type ChatReply struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Provider defines the interface for the botanist assistant backends.
// Implementations include the Gemini API and DeepSeek (chat only).
type Provider interface {
	// Identify analyzes a photo and returns the structured plant record.
	Identify(ctx context.Context, image []byte, mimeType string) (models.PlantDetails, error)

	// Chat sends the conversation history and returns the assistant's reply.
	Chat(ctx context.Context, history []models.ChatMessage) (ChatReply, error)

	// Name returns the provider name (e.g., "gemini", "deepseek").
	Name() string
}
