package agent

import (
	"context"
	"fmt"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIModel is used when no model name is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAI is a Model backed by the OpenAI chat completion API.
type OpenAI struct {
	cli  oa.Client
	Name string
}

func NewOpenAI(apiKey, model string, opts ...option.RequestOption) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAI{cli: oa.NewClient(opts...), Name: model}
}

func (o *OpenAI) Generate(ctx context.Context, p Prompt) (string, error) {
	if _, err := p.lastUser(); err != nil {
		return "", err
	}
	messages := make([]oa.ChatCompletionMessageParamUnion, 0, len(p.Messages)+1)
	messages = append(messages, oa.SystemMessage(p.System))
	for _, m := range p.Messages {
		if m.Role == Assistant {
			messages = append(messages, oa.AssistantMessage(m.Content))
		} else {
			messages = append(messages, oa.UserMessage(m.Content))
		}
	}

	resp, err := o.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model:       oa.ChatModel(o.Name),
		Messages:    messages,
		MaxTokens:   oa.Int(int64(p.MaxTokens)),
		Temperature: oa.Float(p.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai %s: %w", o.Name, ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
