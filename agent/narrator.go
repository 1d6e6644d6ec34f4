package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/advisor"
	"github.com/rs/zerolog"
)

// ModelNarrator asks a language model to explain the top action of an
// analysis. The model only rephrases figures computed by the analysis.
type ModelNarrator struct {
	Model       Model
	MaxTokens   int
	Temperature float64
}

// NewModelNarrator creates a narrator with the default generation settings.
func NewModelNarrator(m Model) *ModelNarrator {
	return &ModelNarrator{Model: m, MaxTokens: 800, Temperature: 0.15}
}

func (n *ModelNarrator) Narrate(ctx context.Context, a *advisor.Analysis) (Insight, error) {
	if a.TopAction == nil {
		return noActionInsight(a), nil
	}
	system, user, err := narrationPrompts(a)
	if err != nil {
		return Insight{}, err
	}
	raw, err := n.Model.Generate(ctx, Prompt{
		System:      system,
		Messages:    []Message{{Role: User, Content: user}},
		MaxTokens:   n.MaxTokens,
		Temperature: n.Temperature,
	})
	if err != nil {
		return Insight{}, err
	}
	return parseInsight(raw, a.TopAction)
}

func narrationPrompts(a *advisor.Analysis) (system, user string, err error) {
	lo, hi := ConfidenceBand(a.TopAction.Score)

	system = fmt.Sprintf(`You are a financial analysis assistant for a self-directed investing tool. You receive pre-calculated outputs from a deterministic financial engine. Your only job is to explain the top recommendation in clear, professional language.

STRICT RULES:
- Do NOT invent numbers. Use ONLY the data provided.
- Be direct and professional. Zero fluff or marketing language.
- The confidence score MUST be between %d and %d.
- Maximum 200 words for the explanation field.
- Always include a clear disclaimer.
- Respond with ONLY valid JSON, no markdown, no code fences.`, lo, hi)

	type actionSummary struct {
		Type  advisor.ActionType `json:"type"`
		Score int                `json:"score"`
		Title string             `json:"title"`
	}
	type scenarioSummary struct {
		Scenario        string `json:"scenario"`
		FinalValue      string `json:"finalValue"`
		GoalProbability string `json:"goalProbability"`
	}
	actions := make([]actionSummary, 0, 4)
	for i, act := range a.Actions {
		if i == 4 {
			break
		}
		actions = append(actions, actionSummary{act.Type, act.Score, act.Title})
	}
	scenarios := make([]scenarioSummary, 0, len(a.Scenarios))
	for _, s := range a.Scenarios {
		scenarios = append(scenarios, scenarioSummary{
			Scenario:        s.Label,
			FinalValue:      advisor.FormatMoney(s.FinalValue, a.Currency),
			GoalProbability: fmt.Sprintf("%d%%", s.GoalProbability),
		})
	}

	var sections [4][]byte
	for i, v := range []any{a.Metrics, a.TopAction, actions, scenarios} {
		if sections[i], err = json.MarshalIndent(v, "", "  "); err != nil {
			return "", "", fmt.Errorf("cannot encode prompt: %w", err)
		}
	}

	user = fmt.Sprintf(`PORTFOLIO METRICS:
%s

TOP RECOMMENDED ACTION:
%s

ALL SCORED ACTIONS (context only):
%s

SCENARIO PROJECTIONS:
%s

Respond in this exact JSON format:
{
  "headline":    "<one punchy sentence: the #1 action>",
  "explanation": "<2-3 paragraphs explaining why this is the highest-leverage action right now>",
  "keyNumbers":  ["<stat 1>", "<stat 2>", "<stat 3>"],
  "confidence":  <integer between %d and %d>,
  "disclaimer":  %q
}`, sections[0], sections[1], sections[2], sections[3], lo, hi, Disclaimer)
	return system, user, nil
}

// Fallback runs the Primary narrator and falls back to the template insight
// on any failure. It never returns an error.
type Fallback struct {
	Primary Narrator      // nil always uses the template
	Timeout time.Duration // 0 means no timeout
	Log     zerolog.Logger
}

func (f *Fallback) Narrate(ctx context.Context, a *advisor.Analysis) (Insight, error) {
	if f.Primary == nil {
		return templateInsight(a), nil
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	start := time.Now()
	ins, err := f.Primary.Narrate(ctx, a)
	if err != nil {
		ev := f.Log.Warn().Err(err).Str("analysis", a.ID)
		if errors.Is(err, context.DeadlineExceeded) {
			ev = ev.Dur("timeout", f.Timeout)
		}
		ev.Msg("narration failed, using template insight")
		return templateInsight(a), nil
	}
	f.Log.Debug().Str("analysis", a.ID).Dur("elapsed", time.Since(start)).Msg("narration done")
	return ins, nil
}
