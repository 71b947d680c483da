package prompt

import (
	"fmt"
	"strings"
)

const templateSkeleton = `You are a senior cloud architect reviewing infrastructure-as-code against the
%s pillar of the AWS Well-Architected Framework.

Review the Terraform code below and report concrete problems. Focus on:
%s

You MUST respond with ONLY a JSON object. No markdown, no explanation, no
preamble. The object must have this exact structure:
{
  "issues": [
    {
      "description": "What is wrong and where",
      "severity": "CRITICAL|HIGH|MEDIUM|LOW",
      "recommendation": "How to fix it",
      "pillar": "%s"
    }
  ]
}

If there are no issues, respond with: {"issues": []}

--- BEGIN CODE ---
{code}
--- END CODE ---
`

var pillarFocus = map[string][]string{
	"Operational Excellence": {
		"missing tagging and naming conventions",
		"absent monitoring, alarms, or log retention settings",
		"manual steps that should be codified",
	},
	"Security": {
		"overly permissive IAM policies and security group rules",
		"unencrypted storage, transit, or state",
		"hardcoded credentials and public exposure of resources",
	},
	"Reliability": {
		"single points of failure and missing multi-AZ placement",
		"absent backups, lifecycle, or deletion protection",
		"missing health checks and autoscaling",
	},
	"Performance Efficiency": {
		"oversized or outdated instance and storage types",
		"missing caching layers",
		"inefficient data transfer paths",
	},
	"Cost Optimization": {
		"resources that are overprovisioned or always-on",
		"missing lifecycle rules and storage tiering",
		"unused or orphaned resources",
	},
	"Sustainability": {
		"overprovisioned capacity that wastes energy",
		"regions and instance families with poor efficiency",
		"data retained beyond its useful life",
	},
}

// DefaultTemplate returns the built-in starter template for a pillar. Pillars
// without a curated focus list get a generic review instruction.
func DefaultTemplate(pillar string) string {
	focus, ok := pillarFocus[pillar]
	if !ok {
		focus = []string{"any issue relevant to this pillar"}
	}
	var b strings.Builder
	for _, f := range focus {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return fmt.Sprintf(templateSkeleton, pillar, strings.TrimRight(b.String(), "\n"), pillar)
}
