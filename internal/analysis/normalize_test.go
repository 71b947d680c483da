package analysis

import (
	"testing"
)

func TestNormalize_PlainJSON(t *testing.T) {
	raw := `{"issues":[{"description":"open security group","severity":"HIGH","recommendation":"restrict ingress","pillar":"Security"}]}`
	res := Normalize(raw, PillarSecurity)
	if !res.Parsed {
		t.Fatal("expected Parsed=true for valid JSON")
	}
	m, ok := res.Value.(map[string]any)
	if !ok {
		t.Fatalf("Value type = %T, want map[string]any", res.Value)
	}
	issues, ok := m["issues"].([]any)
	if !ok || len(issues) != 1 {
		t.Fatalf("issues = %v, want one entry", m["issues"])
	}
}

func TestNormalize_FencedJSON(t *testing.T) {
	raw := "```json\n{\"issues\":[]}\n```"
	res := Normalize(raw, PillarSecurity)
	if !res.Parsed {
		t.Fatalf("expected fenced JSON to parse, got fallback: %v", res.Value)
	}
}

func TestNormalize_ArbitraryShapePassesThrough(t *testing.T) {
	// Any valid JSON is passed through verbatim, not just issue envelopes.
	res := Normalize(`["a","b"]`, PillarReliability)
	if !res.Parsed {
		t.Fatal("expected Parsed=true")
	}
	arr, ok := res.Value.([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("Value = %v, want two-element array", res.Value)
	}
}

func TestNormalize_Fallback(t *testing.T) {
	raw := "I could not produce JSON, sorry."
	res := Normalize(raw, PillarCostOptimization)
	if res.Parsed {
		t.Fatal("expected Parsed=false for prose reply")
	}
	env, ok := res.Value.(Envelope)
	if !ok {
		t.Fatalf("Value type = %T, want Envelope", res.Value)
	}
	if len(env.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(env.Issues))
	}
	issue := env.Issues[0]
	if issue.Description != raw {
		t.Errorf("Description = %q, want the cleaned reply", issue.Description)
	}
	if issue.Severity != "UNKNOWN" {
		t.Errorf("Severity = %q, want UNKNOWN", issue.Severity)
	}
	if issue.Recommendation != "Check manually" {
		t.Errorf("Recommendation = %q, want %q", issue.Recommendation, "Check manually")
	}
	if issue.Pillar != string(PillarCostOptimization) {
		t.Errorf("Pillar = %q, want %q", issue.Pillar, PillarCostOptimization)
	}
}

func TestNormalize_FallbackUsesCleanedText(t *testing.T) {
	raw := "```json\nnot actually json\n```"
	res := Normalize(raw, PillarSecurity)
	if res.Parsed {
		t.Fatal("expected fallback")
	}
	env := res.Value.(Envelope)
	if env.Issues[0].Description != "not actually json" {
		t.Errorf("Description = %q, want fence markers stripped", env.Issues[0].Description)
	}
}

func TestNormalize_EmptyReply(t *testing.T) {
	res := Normalize("", PillarSecurity)
	if res.Parsed {
		t.Fatal("empty reply should not parse")
	}
	if _, ok := res.Value.(Envelope); !ok {
		t.Fatalf("Value type = %T, want Envelope", res.Value)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"issues":[]}`, `{"issues":[]}`},
		{"json fence", "```json\n{\"issues\":[]}\n```", "{\"issues\":[]}"},
		{"bare closing fence", "{\"issues\":[]}```", "{\"issues\":[]}"},
		{"fence with leading prose kept", "Here you go:\n```json\n{}\n```", "Here you go:\n\n{}"},
		{"inline json fence", "```json{\"issues\":[]}```", "{\"issues\":[]}"},
		{"whitespace", "  \n{\"a\":1}\n  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
