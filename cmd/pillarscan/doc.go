// Pillarscan is a CLI for analyzing infrastructure-as-code against the
// pillars of a well-architected cloud design.
//
// It walks a local directory or a cloned git repository, sends each
// Terraform file to a hosted LLM once per pillar, and writes a structured
// JSON report of the findings.
//
// Usage:
//
//	pillarscan analyze ./infra                  # analyze a local directory
//	pillarscan analyze --repo <url>             # clone and analyze a repository
//	pillarscan analyze ./infra --format text    # human-readable output
//	pillarscan prompts init                     # write default prompt templates
//	pillarscan models doctor                    # validate provider credentials
//
// See https://github.com/pillarscan/pillarscan for full documentation.
package main
