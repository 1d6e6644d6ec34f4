package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_Reply_Errors(t *testing.T) {
	c := NewChat(&fakeModel{reply: "ok"})
	ctx := context.Background()

	_, err := c.Reply(ctx, Conversation{Analysis: sampleAnalysis()})
	assert.ErrorIs(t, err, ErrNoMessages)

	_, err = c.Reply(ctx, Conversation{
		Analysis: sampleAnalysis(),
		Messages: []Message{{Role: User, Content: "hi"}, {Role: Assistant, Content: "hello"}},
	})
	assert.ErrorIs(t, err, ErrLastNotUser)

	_, err = c.Reply(ctx, Conversation{Messages: []Message{{Role: User, Content: "hi"}}})
	assert.ErrorIs(t, err, ErrNoAnalysis)

	failing := NewChat(&fakeModel{err: errors.New("quota")})
	_, err = failing.Reply(ctx, Conversation{Analysis: sampleAnalysis(), Messages: []Message{{Role: User, Content: "hi"}}})
	assert.EqualError(t, err, "quota")
}

func TestChat_Reply_NoModel(t *testing.T) {
	c := NewChat(nil)
	got, err := c.Reply(context.Background(), Conversation{Messages: []Message{{Role: User, Content: "Should I buy more?"}}})
	require.NoError(t, err)
	assert.Contains(t, got, "require an AI provider")
	assert.Contains(t, got, `You asked: "Should I buy more?"`)
}

func TestChat_Reply(t *testing.T) {
	m := &fakeModel{reply: "  Deploy the cash first.\n"}
	c := NewChat(m)
	msgs := []Message{
		{Role: User, Content: "What first?"},
		{Role: Assistant, Content: "The cash."},
		{Role: User, Content: "Why?"},
	}
	got, err := c.Reply(context.Background(), Conversation{Analysis: sampleAnalysis(), Portfolio: samplePortfolio(), Messages: msgs})
	require.NoError(t, err)
	assert.Equal(t, "Deploy the cash first.", got)

	require.Len(t, m.got, 1)
	p := m.got[0]
	assert.Equal(t, msgs, p.Messages)
	assert.Equal(t, 400, p.MaxTokens)
	for _, want := range []string{
		"Total value: $100,000",
		"Equity: 60.0% | Fixed income: 20.0% | Cash: 20.0%",
		"Weighted annual return: 8.0%",
		"TFSA room: $7,000 | RRSP room: $12,000",
		"Savings rate: 25.0%",
		"HOLDINGS: XEQT.TO (equity): 100 shares @ 30",
		"TOP RECOMMENDATION: Deploy Idle Cash (score 70/100)",
		"Estimated annual benefit: $3,500",
		"2. Use RRSP Contribution Room (score 40/100)",
		"SCENARIO PROJECTIONS (goal: $200,000 in 10 years):",
		"Base Case: 82% probability, $150,000 projected",
		"Never invent numbers",
	} {
		assert.Contains(t, p.System, want)
	}
	assert.NotContains(t, p.System, "Emergency fund")
}

func TestChat_Reply_Empty(t *testing.T) {
	c := NewChat(&fakeModel{reply: " \n"})
	got, err := c.Reply(context.Background(), Conversation{Analysis: sampleAnalysis(), Messages: []Message{{Role: User, Content: "?"}}})
	require.NoError(t, err)
	assert.Equal(t, "No response generated.", got)
}
