package botanist

import (
	"context"
	"fmt"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"

	"github.com/leafyapp/leafy/internal/config"
	"github.com/leafyapp/leafy/internal/models"
)

// DeepSeekProvider is a text-only assistant backend. It supports chat but
// cannot identify plants from photos.
type DeepSeekProvider struct {
	client deepseek.Client
	model  string
}

func NewDeepSeekProvider(cfg config.DeepSeekConfig) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := deepseek.NewClient(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	return &DeepSeekProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *DeepSeekProvider) Name() string {
	return config.ProviderDeepSeek
}

func (p *DeepSeekProvider) Identify(ctx context.Context, image []byte, mimeType string) (models.PlantDetails, error) {
	return models.PlantDetails{}, fmt.Errorf("the deepseek provider is text-only and cannot identify photos; use the gemini provider")
}

func (p *DeepSeekProvider) Chat(ctx context.Context, history []models.ChatMessage) (ChatReply, error) {
	messages := make([]*request.Message, 0, len(history)+1)
	messages = append(messages, &request.Message{
		Role:    "system",
		Content: chatSystemPrompt,
	})
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, &request.Message{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := p.client.CallChatCompletionsChat(ctx, &request.ChatCompletionsRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return ChatReply{}, fmt.Errorf("chat request failed: %w", err)
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}
	if content == "" {
		content = "I apologize, I couldn't find an answer for that right now."
	}

	return ChatReply{Text: content}, nil
}
