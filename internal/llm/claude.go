package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const claudeMaxTokens = 1024

// ClaudeClient generates text using the Anthropic Messages API.
type ClaudeClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewClaudeClient creates a Claude-backed Generator.
func NewClaudeClient(apiKey, model string) (*ClaudeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	m := anthropic.ModelClaudeHaiku4_5_20251001
	if model != "" {
		m = anthropic.Model(model)
	}

	return &ClaudeClient{client: &client, model: m}, nil
}

// Generate sends a single prompt and returns the concatenated text blocks of
// the response. Temperature is pinned to zero.
func (c *ClaudeClient) Generate(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   claudeMaxTokens,
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude generate: %v: %w", err, ErrGenerationUnavailable)
	}

	text := ""
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += textBlock.Text
		}
	}
	return text, nil
}
