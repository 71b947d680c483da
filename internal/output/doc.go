// Package output formats analysis reports for display or machine
// consumption.
//
// Three formats are supported:
//   - json: the report artifact keyed by file, then pillar, then per-chunk
//     outcomes (default)
//   - text: human-readable terminal output
//   - markdown: PR-comment-friendly with collapsible sections per pillar
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteReport] to handle destination selection; file destinations are
// written atomically via temp-and-rename.
package output
