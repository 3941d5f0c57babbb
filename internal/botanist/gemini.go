package botanist

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/leafyapp/leafy/internal/config"
	"github.com/leafyapp/leafy/internal/models"
)

// GeminiProvider talks to the Gemini API. It is the only provider that
// supports image identification.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return config.ProviderGemini
}

func (p *GeminiProvider) Identify(ctx context.Context, image []byte, mimeType string) (models.PlantDetails, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(identifyPrompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return models.PlantDetails{}, fmt.Errorf("identification request failed: %w", err)
	}

	return parsePlantDetails(resp.Text())
}

func (p *GeminiProvider) Chat(ctx context.Context, history []models.ChatMessage) (ChatReply, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return ChatReply{}, fmt.Errorf("chat request failed: %w", err)
	}

	reply := ChatReply{Text: resp.Text()}
	if reply.Text == "" {
		reply.Text = "I apologize, I couldn't find an answer for that right now."
	}

	// Surface search-grounding citations when the model used them
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			reply.Sources = append(reply.Sources, Source{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}

	return reply, nil
}
