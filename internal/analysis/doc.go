// Package analysis contains the core types and engine for pillar-based IaC
// review.
//
// It defines the Pillar, Issue, Outcome, and Report types, splits oversized
// file content into fixed-size character windows, normalizes free-form model
// replies into a well-formed envelope, and walks a directory tree invoking
// one model call per (file-or-chunk, pillar) unit.
//
// The normalizer never fails: replies that do not parse as JSON become a
// deterministic single-issue fallback. Per-unit errors (missing prompt
// template, transport failures) are folded into the report as {"error": msg}
// entries rather than aborting the run. Execution is strictly sequential;
// chunk order in the report equals the order chunks were cut from the file.
package analysis
