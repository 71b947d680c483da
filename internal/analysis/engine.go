package analysis

import (
	"context"

	"github.com/pillarscan/pillarscan/internal/cache"
	"github.com/pillarscan/pillarscan/internal/prompt"
	"github.com/pillarscan/pillarscan/internal/providers"
	"github.com/pillarscan/pillarscan/internal/redact"
)

// DefaultMaxTokens is the fixed output token budget for each model call.
const DefaultMaxTokens = 4000

// Analyzer composes the prompt store, a provider, and the normalizer into
// one "analyze text for pillar" operation.
type Analyzer struct {
	provider  providers.Invoker
	prompts   *prompt.Store
	cache     *cache.Cache
	redact    bool
	maxTokens int
}

// AnalyzerOptions configures an Analyzer. A nil Cache disables caching;
// MaxTokens of zero uses DefaultMaxTokens.
type AnalyzerOptions struct {
	Cache         *cache.Cache
	RedactSecrets bool
	MaxTokens     int
}

// NewAnalyzer creates an Analyzer around a provider and prompt store.
func NewAnalyzer(provider providers.Invoker, prompts *prompt.Store, opts AnalyzerOptions) *Analyzer {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Analyzer{
		provider:  provider,
		prompts:   prompts,
		cache:     opts.Cache,
		redact:    opts.RedactSecrets,
		maxTokens: maxTokens,
	}
}

// AnalyzeUnit analyzes one text unit (a whole file or a single chunk) for
// one pillar. Every failure mode (missing template, transport error) is
// folded into an error Outcome; the method never aborts the caller's run.
func (a *Analyzer) AnalyzeUnit(ctx context.Context, text string, pillar Pillar) Outcome {
	if a.redact {
		text = redact.Secrets(text)
	}

	promptText, err := a.prompts.Build(string(pillar), text)
	if err != nil {
		return ErrorOutcome(err.Error())
	}

	var key string
	if a.cache != nil && a.cache.Enabled() {
		key = cache.BuildCacheKey(a.provider.Name(), a.provider.Model(), string(pillar), text)
		if raw, ok := a.cache.Get(key); ok {
			return Outcome{Value: Normalize(raw, pillar).Value}
		}
	}

	resp, err := a.provider.Invoke(ctx, providers.Request{
		Prompt:    promptText,
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return ErrorOutcome(err.Error())
	}

	if key != "" {
		// best effort
		_ = a.cache.Put(key, resp.Content)
	}

	return Outcome{Value: Normalize(resp.Content, pillar).Value}
}
