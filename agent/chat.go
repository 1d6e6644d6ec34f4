package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

var (
	ErrNoMessages  = errors.New("no messages provided")
	ErrLastNotUser = errors.New("last message must be from user")
	ErrNoAnalysis  = errors.New("conversation has no analysis")
)

// FailedReply is shown to the user when the model cannot answer.
const FailedReply = "Chat failed. Please try again."

// Conversation is a follow-up exchange about one analysis. The caller keeps
// the history, a Chat holds no state between replies.
type Conversation struct {
	Analysis  *advisor.Analysis       `json:"analysis"`
	Portfolio *advisor.PortfolioInput `json:"portfolio"`
	Messages  []Message               `json:"messages"`
}

// Chat answers follow-up questions grounded on an analysis.
type Chat struct {
	Model       Model // nil answers with a canned reply
	MaxTokens   int
	Temperature float64
}

// NewChat creates a Chat with the default generation settings.
func NewChat(m Model) *Chat {
	return &Chat{Model: m, MaxTokens: 400, Temperature: 0.2}
}

// Reply returns the assistant's answer to the last message of c.
func (ch *Chat) Reply(ctx context.Context, c Conversation) (string, error) {
	last, err := Prompt{Messages: c.Messages}.lastUser()
	if err != nil {
		return "", err
	}
	if ch.Model == nil {
		return mockReply(last.Content), nil
	}
	if c.Analysis == nil || c.Analysis.Metrics == nil {
		return "", ErrNoAnalysis
	}
	reply, err := ch.Model.Generate(ctx, Prompt{
		System:      groundingPrompt(c.Analysis, c.Portfolio),
		Messages:    c.Messages,
		MaxTokens:   ch.MaxTokens,
		Temperature: ch.Temperature,
	})
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "No response generated.", nil
	}
	return reply, nil
}

func mockReply(question string) string {
	return "I can see your portfolio details, but chat responses require an AI provider. " +
		"Configure OPENAI_API_KEY or GEMINI_API_KEY in your environment to enable AI-powered follow-up questions.\n\n" +
		fmt.Sprintf("You asked: %q", question)
}

// groundingPrompt is the system instruction that restricts the chat to the
// figures of the analysis. p may be nil.
func groundingPrompt(a *advisor.Analysis, p *advisor.PortfolioInput) string {
	m := a.Metrics
	money := func(v float64) string { return advisor.FormatMoney(v, a.Currency) }

	var b strings.Builder
	b.WriteString("You are a financial advisor assistant, helping a self-directed investor understand their portfolio analysis.\n\n")

	b.WriteString("PORTFOLIO SNAPSHOT:\n")
	fmt.Fprintf(&b, "Total value: %s\n", money(m.TotalValue))
	fmt.Fprintf(&b, "Equity: %.1f%% | Fixed income: %.1f%% | Cash: %.1f%%\n",
		m.CurrentAllocation.EquityPct, m.CurrentAllocation.FixedIncomePct, m.CurrentAllocation.CashPct)
	fmt.Fprintf(&b, "Unrealised gain/loss: %s (%.1f%%)\n", money(m.UnrealizedGainLoss), m.UnrealizedGainLossPct)
	fmt.Fprintf(&b, "Weighted annual return: %.1f%%\n", m.WeightedAnnualReturn*100)
	if p != nil {
		fmt.Fprintf(&b, "TFSA room: %s | RRSP room: %s\n", money(p.TFSARoomRemaining), money(p.RRSPRoomRemaining))
		fmt.Fprintf(&b, "Annual contribution: %s\n", money(p.AnnualContribution))
	}
	if m.SavingsRate != nil {
		fmt.Fprintf(&b, "Savings rate: %.1f%%\n", *m.SavingsRate*100)
	}
	if m.LiquidityRatio != nil {
		fmt.Fprintf(&b, "Emergency fund: %.1f months of expenses\n", *m.LiquidityRatio)
	}

	if p != nil && len(p.Holdings) > 0 {
		holdings := make([]string, 0, len(p.Holdings))
		for _, h := range p.Holdings {
			holdings = append(holdings, fmt.Sprintf("%s (%s): %g shares @ %g", h.Symbol, h.AssetClass, h.Shares, h.CurrentPrice))
		}
		fmt.Fprintf(&b, "\nHOLDINGS: %s\n", strings.Join(holdings, ", "))
	}

	if top := a.TopAction; top != nil {
		fmt.Fprintf(&b, "\nTOP RECOMMENDATION: %s (score %d/100)\n", top.Title, top.Score)
		fmt.Fprintf(&b, "Rationale: %s\n", top.Rationale)
		if top.EstimatedAnnualBenefit > 0 {
			fmt.Fprintf(&b, "Estimated annual benefit: %s\n", money(top.EstimatedAnnualBenefit))
		}
	} else {
		b.WriteString("\nTOP RECOMMENDATION: none, no action applies to this portfolio.\n")
	}

	b.WriteString("\nALL SCORED ACTIONS:\n")
	for i, act := range a.Actions {
		fmt.Fprintf(&b, "%d. %s (score %d/100)\n", i+1, act.Title, act.Score)
	}

	fmt.Fprintf(&b, "\nSCENARIO PROJECTIONS (goal: %s in %d years):\n", money(a.Goal.TargetAmount), a.Goal.YearsToGoal)
	for _, s := range a.Scenarios {
		fmt.Fprintf(&b, "%s: %d%% probability, %s projected\n", s.Label, s.GoalProbability, money(s.FinalValue))
	}

	b.WriteString(`
STRICT RULES:
- Never invent numbers. Only reference data provided above.
- Be concise and direct: 2-4 sentences per answer unless more detail is clearly needed.
- Always add a brief disclaimer if giving forward-looking statements.
- Do not execute trades or provide personalised regulated advice.`)
	return b.String()
}
