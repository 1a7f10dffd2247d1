package screening

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DecodeScoreResult turns the model's raw text into a canonical ScoreResult.
// The payload is untrusted: parse failures degrade to the safe default, the
// score is clamped into range, and bullets are gated on the clamped score.
// This function never fails.
func DecodeScoreResult(raw string) ScoreResult {
	result := ScoreResult{Score: minScore, ScoreOutOf: ScoreOutOf, Bullets: []string{}}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return result
	}

	result.Score = clampScore(coerceNumber(payload["score"]))
	if result.Score >= highFitThreshold {
		result.Bullets = coerceBullets(payload["bullets"])
	}
	return result
}

// coerceNumber converts an arbitrary decoded JSON value to a float64,
// returning NaN when no numeric reading exists.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return parsed
	default:
		return math.NaN()
	}
}

// clampScore forces a score into [1, 5]; non-finite values fall to 1.
func clampScore(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return minScore
	}
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// coerceBullets converts an arbitrary decoded JSON value into at most
// maxBullets trimmed, non-empty strings. Anything that is not a list of
// text-like values contributes nothing.
func coerceBullets(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, maxBullets)
	for _, item := range items {
		if len(out) == maxBullets {
			break
		}
		text, ok := stringify(item)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}

func stringify(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}
