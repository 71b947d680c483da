package analysis

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOutcome_MarshalValue(t *testing.T) {
	o := Outcome{Value: map[string]any{"issues": []any{}}}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `{"issues":[]}` {
		t.Errorf("got %s, want the value verbatim", data)
	}
}

func TestOutcome_MarshalError(t *testing.T) {
	o := ErrorOutcome("connection refused")
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `{"error":"connection refused"}` {
		t.Errorf("got %s, want error object", data)
	}
}

func TestReport_MarshalShape(t *testing.T) {
	report := Report{
		"main.tf": FileReport{
			"Security": []Outcome{
				{Value: map[string]any{"issues": []any{}}},
				ErrorOutcome("boom"),
			},
		},
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"main.tf"`) {
		t.Error("top-level key should be the file name")
	}
	if !strings.Contains(s, `"Security"`) {
		t.Error("second-level key should be the pillar name")
	}
	if !strings.Contains(s, `"error": "boom"`) {
		t.Error("failed unit should marshal as an error object")
	}
}

func TestOutcome_IssuesFromEnvelope(t *testing.T) {
	o := Outcome{Value: Envelope{Issues: []Issue{{Description: "d", Severity: "HIGH"}}}}
	issues := o.Issues()
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].Severity != "HIGH" {
		t.Errorf("Severity = %q, want HIGH", issues[0].Severity)
	}
}

func TestOutcome_IssuesFromParsedMap(t *testing.T) {
	var v any
	raw := `{"issues":[{"description":"open port","severity":"medium","recommendation":"close it","pillar":"Security"}]}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	o := Outcome{Value: v}
	issues := o.Issues()
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].Description != "open port" {
		t.Errorf("Description = %q", issues[0].Description)
	}
}

func TestOutcome_IssuesFromUnexpectedShape(t *testing.T) {
	o := Outcome{Value: []any{"not", "an", "envelope"}}
	if got := o.Issues(); got != nil {
		t.Errorf("got %v, want nil for non-envelope value", got)
	}
}

func TestSummarize(t *testing.T) {
	report := Report{
		"a.tf": FileReport{
			"Security": []Outcome{
				{Value: Envelope{Issues: []Issue{
					{Severity: "HIGH"},
					{Severity: "high"},
					{Severity: ""},
				}}},
			},
			"Reliability": []Outcome{
				ErrorOutcome("boom"),
			},
		},
		"b.tf": FileReport{
			"Security": []Outcome{
				{Value: Envelope{}},
			},
		},
	}

	s := Summarize(report)
	if s.Files != 2 {
		t.Errorf("Files = %d, want 2", s.Files)
	}
	if s.Units != 3 {
		t.Errorf("Units = %d, want 3", s.Units)
	}
	if s.Issues != 3 {
		t.Errorf("Issues = %d, want 3", s.Issues)
	}
	if s.Errors != 1 {
		t.Errorf("Errors = %d, want 1", s.Errors)
	}
	if s.Severity["HIGH"] != 2 {
		t.Errorf("Severity[HIGH] = %d, want 2", s.Severity["HIGH"])
	}
	if s.Severity["UNKNOWN"] != 1 {
		t.Errorf("Severity[UNKNOWN] = %d, want 1", s.Severity["UNKNOWN"])
	}
}

func TestDefaultPillars(t *testing.T) {
	pillars := DefaultPillars()
	if len(pillars) != 6 {
		t.Fatalf("got %d pillars, want 6", len(pillars))
	}
	if pillars[0] != PillarOperationalExcellence {
		t.Errorf("pillars[0] = %q, want Operational Excellence", pillars[0])
	}
	if pillars[5] != PillarSustainability {
		t.Errorf("pillars[5] = %q, want Sustainability", pillars[5])
	}
}
