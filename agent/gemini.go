package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini is a Model backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	Name   string
}

// NewGemini creates a Gemini model. An empty apiKey lets the client read
// GOOGLE_API_KEY from the environment.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, Name: model}, nil
}

// Generate replays the previous turns as the chat history and sends the last
// user message.
func (g *Gemini) Generate(ctx context.Context, p Prompt) (string, error) {
	last, err := p.lastUser()
	if err != nil {
		return "", err
	}
	temperature := float32(p.Temperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		MaxOutputTokens:   int32(p.MaxTokens),
		Temperature:       &temperature,
	}
	chat, err := g.client.Chats.Create(ctx, g.Name, config, geminiHistory(p.Messages[:len(p.Messages)-1]))
	if err != nil {
		return "", err
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: last.Content})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini %s: %w", g.Name, ErrEmptyResponse)
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini %s: %w", g.Name, ErrEmptyResponse)
	}
	return b.String(), nil
}

func geminiHistory(msgs []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		var role genai.Role = genai.RoleUser
		if m.Role == Assistant {
			role = genai.RoleModel
		}
		history = append(history, genai.NewContentFromText(m.Content, role))
	}
	return history
}
