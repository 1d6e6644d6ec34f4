package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/advisor/agent"
	"github.com/etnz/advisor/internal/config"
	"github.com/rs/zerolog"
)

var errMissingKey = errors.New("missing API key")

// newModel returns the language model of the configured provider, nil for
// the template provider.
func newModel(ctx context.Context, c *config.Config, name string) (agent.Model, error) {
	switch c.Narrator.Provider {
	case config.ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai: %w, set OPENAI_API_KEY", errMissingKey)
		}
		return agent.NewOpenAI(c.OpenAI.APIKey, name), nil
	case config.ProviderGemini:
		return agent.NewGemini(ctx, c.Gemini.APIKey, name)
	default:
		return nil, nil
	}
}

// newNarrator returns a narrator that never fails: without a usable provider
// it is the template narrator.
func newNarrator(ctx context.Context, c *config.Config, log zerolog.Logger) agent.Narrator {
	f := &agent.Fallback{Timeout: c.Narrator.Timeout, Log: log}
	m, err := newModel(ctx, c, c.Narrator.Model)
	if err != nil {
		log.Warn().Err(err).Str("provider", c.Narrator.Provider).Msg("AI provider unavailable, using template insights")
		return f
	}
	if m != nil {
		f.Primary = agent.NewModelNarrator(m)
	}
	return f
}

// newChat returns the chat of the configured provider. Without one it
// answers with a canned reply.
func newChat(ctx context.Context, c *config.Config, log zerolog.Logger) *agent.Chat {
	name := c.Narrator.ChatModel
	if name == "" {
		name = c.Narrator.Model
	}
	m, err := newModel(ctx, c, name)
	if err != nil {
		log.Warn().Err(err).Str("provider", c.Narrator.Provider).Msg("AI provider unavailable, chat is disabled")
		return agent.NewChat(nil)
	}
	return agent.NewChat(m)
}
