// Package prompt resolves pillar names to prompt templates.
//
// Templates are plain text files, one per pillar, named by the lowercased,
// underscore-joined pillar name (security.txt, cost_optimization.txt, ...).
// Each template contains a {code} placeholder that is replaced with the
// subject text when the prompt is built. A missing template is a
// configuration error surfaced as [ErrNotFound], not a crash.
//
// [Store.WriteDefaults] seeds a directory with the built-in starter
// templates so a fresh install works before any customization.
package prompt
