package filters

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DecodeFilterSet turns the model's raw text into a canonical FilterSet.
// The payload is untrusted: non-list fields become empty lists, elements are
// trimmed with empties and exact duplicates dropped, each list is truncated
// to its bound, and non-string boolean expressions become empty strings.
// This function never fails; a parse failure yields an all-empty set.
func DecodeFilterSet(raw string) FilterSet {
	var payload map[string]any
	_ = json.Unmarshal([]byte(raw), &payload)

	return FilterSet{
		JobTitles:       coerceStringList(payload["job_titles"], maxJobTitles),
		BooleanTitles:   coerceText(payload["boolean_titles"]),
		Skills:          coerceStringList(payload["skills"], maxSkills),
		Locations:       coerceStringList(payload["locations"], maxLocations),
		Keywords:        coerceStringList(payload["keywords"], maxKeywords),
		BooleanKeywords: coerceText(payload["boolean_keywords"]),
		Industries:      coerceStringList(payload["industries"], maxIndustries),
		YearsExperience: coerceStringList(payload["years_experience"], maxYearsExperience),
	}
}

// coerceStringList converts an arbitrary decoded JSON value into at most max
// trimmed, non-empty, de-duplicated strings. Non-list values contribute
// nothing; text-like elements (strings, numbers, booleans) are stringified
// and the rest are skipped. Order is preserved.
func coerceStringList(v any, max int) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, max)
	seen := make(map[string]struct{}, max)
	for _, item := range items {
		if len(out) == max {
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
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
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

// coerceText converts a decoded JSON value to a trimmed string; anything
// that is not a string becomes "".
func coerceText(v any) string {
	text, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}
