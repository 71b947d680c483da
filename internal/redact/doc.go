// Package redact removes secrets from file content before it is sent to any
// model provider.
//
// Terraform and similar IaC files routinely embed credentials: provider
// blocks with access keys, database passwords in connection strings,
// variable defaults holding tokens. Detection uses regex heuristics covering
// those shapes plus the usual API keys, JWTs, bearer tokens, and private key
// blocks. Matches are replaced with [REDACTED] in place.
package redact
