// Package cli wires together the Cobra command tree for the pillarscan binary.
//
// It defines the root command and all subcommands (analyze, config, prompts,
// cache, models, version), binds flags, reads configuration, drives the
// analysis engine, and returns deterministic exit codes for CI gating.
package cli
