package gemini

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means no parseable JSON could be found anywhere in the reply.
// Callers treat this as "no structured items", not a crash.
var ErrNoJSON = errors.New("no parseable JSON in model response")

var fenceRE = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls structured data out of a model reply that may be pure
// JSON, JSON inside a markdown fence, or JSON buried in prose. The model is
// non-deterministic and not contractually guaranteed to emit clean JSON, so
// parsing falls through three layers before giving up:
//
//  1. parse the whole trimmed string
//  2. parse the interior of the first ``` / ```json fence
//  3. parse the slice from the first '{' or '[' to the last '}' or ']'
func ExtractJSON(text string, v any) error {
	if json.Unmarshal([]byte(strings.TrimSpace(text)), v) == nil {
		return nil
	}

	if m := fenceRE.FindStringSubmatch(text); m != nil {
		if json.Unmarshal([]byte(strings.TrimSpace(m[1])), v) == nil {
			return nil
		}
	}

	start := strings.IndexAny(text, "{[")
	end := max(strings.LastIndex(text, "}"), strings.LastIndex(text, "]"))
	if start != -1 && end > start {
		if json.Unmarshal([]byte(text[start:end+1]), v) == nil {
			return nil
		}
	}

	return ErrNoJSON
}

// StripFences removes fenced code blocks so the surrounding prose can still
// be shown as the human-readable reply when parsing fails.
func StripFences(text string) string {
	return strings.TrimSpace(fenceRE.ReplaceAllString(text, ""))
}
