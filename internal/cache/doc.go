// Package cache provides a file-based cache for raw model replies.
//
// Cache entries are keyed by a SHA-256 hash of the provider name, model
// identifier, pillar, and redacted chunk text. Each entry stores the raw
// reply string along with a creation timestamp and a TTL (in seconds).
// Expired entries are skipped on read and removed lazily.
//
// The default cache directory is $XDG_CACHE_HOME/pillarscan (or the
// OS-appropriate equivalent). Replies are cached before normalization, so a
// hit replays the normalizer rather than the network call.
package cache
