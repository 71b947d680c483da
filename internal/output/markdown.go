package output

import (
	"fmt"
	"io"

	"github.com/pillarscan/pillarscan/internal/analysis"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report analysis.Report) error {
	summary := analysis.Summarize(report)

	fmt.Fprintf(w, "## Pillarscan Well-Architected Review\n\n")

	fmt.Fprintf(w, "| Metric | Count |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Files analyzed | %d |\n", summary.Files)
	fmt.Fprintf(w, "| Issues | %d |\n", summary.Issues)
	fmt.Fprintf(w, "| Failed units | %d |\n\n", summary.Errors)

	if summary.Issues == 0 && summary.Errors == 0 {
		fmt.Fprintln(w, "No issues found. :white_check_mark:")
		return nil
	}

	for _, file := range sortedKeys(report) {
		fmt.Fprintf(w, "### `%s`\n\n", file)
		fr := report[file]
		for _, pillar := range sortedKeys(fr) {
			outcomes := fr[pillar]
			issueCount := 0
			for _, o := range outcomes {
				issueCount += len(o.Issues())
			}
			if issueCount == 0 && !hasError(outcomes) {
				continue
			}

			fmt.Fprintf(w, "<details>\n<summary><b>%s</b> — %d issue(s)</summary>\n\n", pillar, issueCount)
			for i, o := range outcomes {
				if len(outcomes) > 1 {
					fmt.Fprintf(w, "**Chunk %d**\n\n", i+1)
				}
				if o.IsError() {
					fmt.Fprintf(w, "> :warning: %s\n\n", o.Err)
					continue
				}
				for _, issue := range o.Issues() {
					fmt.Fprintf(w, "- **%s**: %s\n", severityLabel(issue.Severity), issue.Description)
					if issue.Recommendation != "" {
						fmt.Fprintf(w, "  - _Recommendation_: %s\n", issue.Recommendation)
					}
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "</details>\n\n")
		}
	}

	return nil
}

func hasError(outcomes []analysis.Outcome) bool {
	for _, o := range outcomes {
		if o.IsError() {
			return true
		}
	}
	return false
}
