package agent

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/etnz/advisor"
)

// Insight is the plain language explanation of an Analysis.
type Insight struct {
	Headline    string   `json:"headline"`
	Explanation string   `json:"explanation"`
	KeyNumbers  []string `json:"keyNumbers"` // at most MaxKeyNumbers
	Confidence  int      `json:"confidence"`
	Disclaimer  string   `json:"disclaimer"`
}

// MaxKeyNumbers is the number of key figures an Insight quotes.
const MaxKeyNumbers = 3

// Disclaimer is attached to every generated insight.
const Disclaimer = "This analysis is for informational purposes only and does not constitute personalized financial advice. " +
	"Past performance does not guarantee future results. " +
	"Consult a registered financial advisor (CFP/CFA) before making investment decisions."

// Confidence bounds.
const (
	MinConfidence     = 52
	MaxConfidence     = 91
	defaultConfidence = 70
)

// Narrator explains an Analysis.
type Narrator interface {
	Narrate(ctx context.Context, a *advisor.Analysis) (Insight, error)
}

// ConfidenceBand returns the range a narrator's confidence must fall in for
// an action of the given score. The band is never inverted: for low scores it
// collapses to MinConfidence.
func ConfidenceBand(score int) (lo, hi int) {
	lo = max(MinConfidence, score-15)
	hi = min(MaxConfidence, score+5)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampConfidence(c float64, score int) int {
	lo, hi := ConfidenceBand(score)
	if math.IsNaN(c) {
		c = defaultConfidence
	}
	return int(math.Max(float64(lo), math.Min(float64(hi), math.Round(c))))
}

// TemplateNarrator builds the insight from the analysis alone. It is
// deterministic and never fails.
type TemplateNarrator struct{}

func (TemplateNarrator) Narrate(_ context.Context, a *advisor.Analysis) (Insight, error) {
	return templateInsight(a), nil
}

func templateInsight(a *advisor.Analysis) Insight {
	top := a.TopAction
	if top == nil {
		return noActionInsight(a)
	}
	var benefit string
	if top.EstimatedAnnualBenefit > 0 {
		benefit = " Estimated annual benefit: " + advisor.FormatMoney(top.EstimatedAnnualBenefit, a.Currency) + "."
	}
	explanation := top.Rationale + benefit + "\n\n" +
		"Every actionable move across the portfolio was evaluated and this one ranked highest " +
		"based on expected financial impact and time-sensitivity. " +
		"Acting on it moves you closer to your investment goal without requiring major changes to your strategy.\n\n" +
		"Review the scenario projections to see how your goal probability varies across market conditions."

	keys := make([]string, 0, MaxKeyNumbers)
	for _, d := range top.Details {
		if len(keys) == MaxKeyNumbers {
			break
		}
		keys = append(keys, keyNumber(d, a.Currency))
	}
	return Insight{
		Headline:    top.Title + ": Your Highest-Leverage Action Right Now",
		Explanation: explanation,
		KeyNumbers:  keys,
		Confidence:  clampConfidence(float64(top.Score), top.Score),
		Disclaimer:  Disclaimer,
	}
}

func noActionInsight(a *advisor.Analysis) Insight {
	keys := []string{"Total value: " + advisor.FormatMoney(a.Metrics.TotalValue, a.Currency)}
	if base, ok := a.Scenario(advisor.BaseRegime); ok {
		keys = append(keys, fmt.Sprintf("Base case goal probability: %d%%", base.GoalProbability))
	}
	return Insight{
		Headline: "No Action Needed: Your Portfolio Is On Track",
		Explanation: "None of the evaluated actions applies to this portfolio: cash, registered room, " +
			"allocation and concentration are all within their thresholds.\n\n" +
			"Keep contributing as planned and review the scenario projections periodically.",
		KeyNumbers: keys,
		Confidence: defaultConfidence,
		Disclaimer: Disclaimer,
	}
}

// keyNumber formats a detail as "label: value". Amounts above 999 are
// shown as money.
func keyNumber(d advisor.Detail, currency string) string {
	var v string
	switch x := d.Value.(type) {
	case float64:
		if x > 999 {
			v = advisor.FormatMoney(x, currency)
		} else {
			v = strconv.FormatFloat(x, 'f', -1, 64)
		}
	default:
		v = fmt.Sprint(x)
	}
	return decamelize(d.Key) + ": " + v
}

// decamelize splits a camelCase key into words: "excessCashPct" gives
// "excess Cash Pct".
func decamelize(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
