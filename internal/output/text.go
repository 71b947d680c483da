package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pillarscan/pillarscan/internal/analysis"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report analysis.Report) error {
	ew := &errWriter{w: w}
	summary := analysis.Summarize(report)

	ew.printf("Pillarscan Well-Architected Review\n")
	ew.println(strings.Repeat("─", 60))
	ew.printf("Files: %d | Units: %d | Issues: %d | Errors: %d\n",
		summary.Files, summary.Units, summary.Issues, summary.Errors)
	if len(summary.Severity) > 0 {
		ew.printf("Severity: %s\n", severityLine(summary.Severity))
	}
	ew.println(strings.Repeat("─", 60))

	if summary.Issues == 0 && summary.Errors == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	for _, file := range sortedKeys(report) {
		ew.printf("\n%s\n", file)
		ew.println(strings.Repeat("─", 40))

		fr := report[file]
		for _, pillar := range sortedKeys(fr) {
			outcomes := fr[pillar]
			ew.printf("  %s\n", pillar)
			for i, o := range outcomes {
				prefix := "  "
				if len(outcomes) > 1 {
					prefix = fmt.Sprintf("    chunk %d: ", i+1)
				}
				if o.IsError() {
					ew.printf("%s  ERROR: %s\n", prefix, o.Err)
					continue
				}
				issues := o.Issues()
				if len(issues) == 0 {
					continue
				}
				for _, issue := range issues {
					ew.printf("%s  [%s] ", prefix, severityLabel(issue.Severity))
					for j, line := range wrapText(issue.Description, 60) {
						if j == 0 {
							ew.printf("%s\n", line)
						} else {
							ew.printf("      %s\n", line)
						}
					}
					if issue.Recommendation != "" {
						for _, line := range wrapText(issue.Recommendation, 60) {
							ew.printf("        → %s\n", line)
						}
					}
				}
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func severityLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "UNKNOWN"
	}
	return s
}

// severityLine renders counts in a fixed order with any free-text severities
// appended alphabetically.
func severityLine(counts map[string]int) string {
	ordered := []string{"CRITICAL", "HIGH", "MEDIUM", "LOW", "UNKNOWN"}
	seen := make(map[string]bool, len(ordered))
	var parts []string
	for _, sev := range ordered {
		seen[sev] = true
		if n := counts[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, sev))
		}
	}
	var rest []string
	for sev := range counts {
		if !seen[sev] {
			rest = append(rest, sev)
		}
	}
	sort.Strings(rest)
	for _, sev := range rest {
		parts = append(parts, fmt.Sprintf("%d %s", counts[sev], sev))
	}
	return strings.Join(parts, ", ")
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
