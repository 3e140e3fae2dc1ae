package stylist

import (
	"errors"
	"strings"
)

var errNoJSON = errors.New("no JSON object in model reply")

// extractJSON recovers a JSON object from free-form model output: code-fence
// markers are stripped, then everything between the first '{' and the last
// '}' is taken as the candidate document. Models wrap JSON in ```json fences
// or pad it with prose often enough that this is the reliable path.
func extractJSON(raw string) (string, error) {
	s := stripFences(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// snippet truncates raw model output for diagnostics so error envelopes stay
// bounded.
func snippet(s string) string {
	const maxDetail = 400
	s = strings.TrimSpace(s)
	if len(s) > maxDetail {
		return s[:maxDetail]
	}
	return s
}
