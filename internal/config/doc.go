// Package config loads and merges pillarscan configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PILLARSCAN_PROVIDER, PILLARSCAN_MODEL,
//     BEDROCK_INFERENCE_PROFILE_ARN, AWS_PROFILE, etc.)
//  3. Config file ($XDG_CONFIG_HOME/pillarscan/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key for the `config set` command.
package config
