package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/leafyapp/leafy/internal/botanist"
	"github.com/leafyapp/leafy/internal/models"
)

type ChatCmd struct {
	Message []string `arg:"" help:"Question for the botanist assistant."`
	Plain   bool     `help:"Print the reply as plain text instead of rendered markdown."`
}

func (c *ChatCmd) Run(appCtx *Context) error {
	question := strings.TrimSpace(strings.Join(c.Message, " "))
	if question == "" {
		return fmt.Errorf("nothing to ask")
	}

	key, err := appCtx.ResolveAPIKey()
	if err != nil {
		return err
	}
	appCtx.Config.SetAPIKey(key)

	ctx := context.Background()
	provider, err := botanist.NewProvider(ctx, appCtx.Config)
	if err != nil {
		return err
	}

	reply, err := provider.Chat(ctx, []models.ChatMessage{
		{Role: models.RoleUser, Content: question},
	})
	if err != nil {
		return err
	}

	if c.Plain || !appCtx.Config.UI.ColoredOutput {
		fmt.Println(reply.Text)
	} else {
		rendered, err := renderMarkdown(reply.Text, appCtx.Config.UI.RenderWidth)
		if err != nil {
			fmt.Println(reply.Text)
		} else {
			fmt.Print(rendered)
		}
	}

	if len(reply.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, s := range reply.Sources {
			title := s.Title
			if title == "" {
				title = s.URI
			}
			fmt.Printf("  - %s (%s)\n", title, s.URI)
		}
	}
	return nil
}

func renderMarkdown(text string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
