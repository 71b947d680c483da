package analysis

import (
	"encoding/json"
	"strings"
)

// Result is the normalizer outcome: either the verbatim parsed reply or a
// synthesized fallback envelope. Parsed distinguishes the two; callers that
// only need the well-formed shape can use Value directly.
type Result struct {
	Parsed bool
	Value  any
}

// Normalize cleans a raw model reply and attempts to parse it as JSON.
// On success the parsed structure is passed through verbatim, whatever its
// shape. On any parse failure a single-issue fallback envelope is
// synthesized from the cleaned text, so the caller always receives a
// well-formed value. Normalize never fails.
func Normalize(raw string, pillar Pillar) Result {
	clean := StripFences(raw)

	var v any
	if err := json.Unmarshal([]byte(clean), &v); err == nil {
		return Result{Parsed: true, Value: v}
	}

	return Result{
		Value: Envelope{
			Issues: []Issue{{
				Description:    clean,
				Severity:       "UNKNOWN",
				Recommendation: "Check manually",
				Pillar:         string(pillar),
			}},
		},
	}
}

// StripFences removes Markdown code-fence markers from text. It operates
// line-wise: a "```json" marker at the start of any line and a "```" marker
// at the end of any line are dropped, wherever they appear, and the result
// is trimmed. Models wrap JSON replies in fences often enough that this runs
// on every reply.
func StripFences(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "```json") {
			line = strings.TrimPrefix(line, "```json")
		}
		if strings.HasSuffix(line, "```") {
			line = strings.TrimSuffix(line, "```")
		}
		lines[i] = line
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
