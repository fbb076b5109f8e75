package ai

import (
	"encoding/json"
	"strings"
)

// DecodeJSON parses a model response into v. Markdown code fences are
// stripped first; if the plain text does not parse, a repaired copy with
// quoted keys is tried before giving up.
func DecodeJSON(text string, v any) error {
	text = StripCodeFences(text)
	err := json.Unmarshal([]byte(text), v)
	if err == nil {
		return nil
	}
	if repaired := repairJSON(text); repaired != text {
		if rerr := json.Unmarshal([]byte(repaired), v); rerr == nil {
			return nil
		}
	}
	return err
}

// StripCodeFences removes a surrounding ```json ... ``` block, if any.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// repairJSON fixes keys that lost their opening quote, a common small-model
// glitch: `{condition": true}` becomes `{"condition": true}`.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	for i := 0; i < len(in); {
		ch := in[i]
		out = append(out, ch)
		i++
		if ch != '{' && ch != ',' {
			continue
		}

		for i < len(in) && isSpace(in[i]) {
			out = append(out, in[i])
			i++
		}
		if i >= len(in) || !isLetter(in[i]) {
			continue
		}

		start := i
		for i < len(in) && (isLetter(in[i]) || in[i] == '_') {
			i++
		}
		if i+1 < len(in) && in[i] == '"' && in[i+1] == ':' {
			out = append(out, '"')
		}
		out = append(out, in[start:i]...)
	}

	return string(out)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
