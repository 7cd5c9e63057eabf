package services

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient sends a single-turn prompt to a chat-completion service and
// returns the reply text.
type ChatClient interface {
	Complete(ctx context.Context, apiKey, persona, prompt string) (string, error)
}

// OpenAIChat is the production ChatClient, talking to the OpenAI
// chat-completions API.
type OpenAIChat struct {
	Model string
}

// NewOpenAIChat returns a ChatClient using the gpt-4o model.
func NewOpenAIChat() *OpenAIChat {
	return &OpenAIChat{Model: openai.GPT4o}
}

// Complete performs one chat-completion round trip. The client is built per
// call because the API key lives in the stored admin config and can change
// between requests. No retry, no streaming, transport-default timeout.
func (c *OpenAIChat) Complete(ctx context.Context, apiKey, persona, prompt string) (string, error) {
	client := openai.NewClient(apiKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: persona},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
