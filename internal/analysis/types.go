package analysis

import (
	"encoding/json"
	"strings"
)

// Pillar is a named analysis dimension. Each pillar selects its own prompt
// template.
type Pillar string

const (
	PillarOperationalExcellence Pillar = "Operational Excellence"
	PillarSecurity              Pillar = "Security"
	PillarReliability           Pillar = "Reliability"
	PillarPerformanceEfficiency Pillar = "Performance Efficiency"
	PillarCostOptimization      Pillar = "Cost Optimization"
	PillarSustainability        Pillar = "Sustainability"
)

// DefaultPillars returns the six Well-Architected pillars in review order.
func DefaultPillars() []Pillar {
	return []Pillar{
		PillarOperationalExcellence,
		PillarSecurity,
		PillarReliability,
		PillarPerformanceEfficiency,
		PillarCostOptimization,
		PillarSustainability,
	}
}

// Issue is a single reported finding.
type Issue struct {
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
	Pillar         string `json:"pillar"`
}

// Envelope is the expected shape of a model reply, and the shape the
// normalizer synthesizes when the reply does not parse.
type Envelope struct {
	Issues []Issue `json:"issues"`
}

// Outcome is one per-chunk analysis result. Exactly one of Value or Err is
// set: Value holds the normalized reply, Err the message of a prompt or
// transport failure for that unit.
type Outcome struct {
	Value any
	Err   string
}

// ErrorOutcome wraps a per-unit failure message.
func ErrorOutcome(msg string) Outcome {
	return Outcome{Err: msg}
}

// IsError reports whether the outcome records a failed unit.
func (o Outcome) IsError() bool {
	return o.Err != ""
}

// MarshalJSON emits either the normalized value or an {"error": msg} object.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{o.Err})
	}
	return json.Marshal(o.Value)
}

// Issues extracts the issue list from a successful outcome. It tolerates both
// the typed fallback Envelope and the untyped shape produced by parsing a
// model reply; anything else yields nil.
func (o Outcome) Issues() []Issue {
	if o.Err != "" {
		return nil
	}
	switch v := o.Value.(type) {
	case Envelope:
		return v.Issues
	case map[string]any:
		raw, ok := v["issues"].([]any)
		if !ok {
			return nil
		}
		issues := make([]Issue, 0, len(raw))
		for _, item := range raw {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			issues = append(issues, Issue{
				Description:    stringField(m, "description"),
				Severity:       stringField(m, "severity"),
				Recommendation: stringField(m, "recommendation"),
				Pillar:         stringField(m, "pillar"),
			})
		}
		return issues
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// FileReport maps a pillar name to the ordered per-chunk outcomes for one
// file. Unchunked files carry a single-element slice per pillar.
type FileReport map[string][]Outcome

// Report is the top-level run output: file name to FileReport. It marshals
// directly to the output artifact, whose top-level keys are file names.
type Report map[string]FileReport

// Summary aggregates counts across a report for human-readable output.
type Summary struct {
	Files    int
	Units    int
	Issues   int
	Errors   int
	Severity map[string]int
}

// Summarize walks the report and tallies outcomes, issues, and errors.
// Severity strings are upper-cased for bucketing; missing severities count
// as UNKNOWN.
func Summarize(r Report) Summary {
	s := Summary{Severity: make(map[string]int)}
	for _, fr := range r {
		s.Files++
		for _, outcomes := range fr {
			for _, o := range outcomes {
				s.Units++
				if o.IsError() {
					s.Errors++
					continue
				}
				for _, issue := range o.Issues() {
					s.Issues++
					sev := strings.ToUpper(strings.TrimSpace(issue.Severity))
					if sev == "" {
						sev = "UNKNOWN"
					}
					s.Severity[sev]++
				}
			}
		}
	}
	return s
}
