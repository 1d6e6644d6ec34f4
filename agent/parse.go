package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/advisor"
)

// ErrMalformedReply is returned when the model reply is not the expected JSON.
var ErrMalformedReply = errors.New("malformed model reply")

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	trailingFence = regexp.MustCompile("\\s*```$")
)

// stripFences removes a markdown code fence wrapping raw.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = leadingFence.ReplaceAllString(raw, "")
	raw = trailingFence.ReplaceAllString(raw, "")
	return strings.TrimSpace(raw)
}

// parseInsight decodes the model reply into an Insight for the action top.
// Missing fields get defaults, confidence is clamped to the band of the
// action and key numbers are capped.
func parseInsight(raw string, top *advisor.ScoredAction) (Insight, error) {
	var doc any
	if err := json.Unmarshal([]byte(stripFences(raw)), &doc); err != nil {
		return Insight{}, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return Insight{}, fmt.Errorf("%w: not a JSON object", ErrMalformedReply)
	}

	ins := Insight{
		Headline:    stringAt(doc, "$.headline", top.Title),
		Explanation: stringAt(doc, "$.explanation", ""),
		Disclaimer:  stringAt(doc, "$.disclaimer", "This is not personalized financial advice."),
		KeyNumbers:  []string{},
	}
	if v, err := jsonpath.Get("$.keyNumbers", doc); err == nil {
		if list, ok := v.([]any); ok {
			for _, e := range list {
				if len(ins.KeyNumbers) == MaxKeyNumbers {
					break
				}
				ins.KeyNumbers = append(ins.KeyNumbers, fmt.Sprint(e))
			}
		}
	}
	ins.Confidence = clampConfidence(numberAt(doc, "$.confidence", defaultConfidence), top.Score)
	return ins, nil
}

func stringAt(doc any, path, def string) string {
	v, err := jsonpath.Get(path, doc)
	if err != nil || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// numberAt reads a number, also accepting numeric strings. Zero and
// unparsable values give def.
func numberAt(doc any, path string, def float64) float64 {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return def
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return def
		}
	default:
		return def
	}
	if f == 0 || math.IsNaN(f) {
		return def
	}
	return f
}
