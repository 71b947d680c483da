package providers

import (
	"context"
	"fmt"
)

// Request contains the data sent to a model for one analysis unit.
type Request struct {
	Prompt    string
	MaxTokens int
}

// Response contains the raw reply from a model.
type Response struct {
	Content    string
	TokensUsed int
}

// Invoker is the provider abstraction: one synchronous, single-turn model
// call per Invoke.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (Response, error)
	Name() string
	Model() string
}

// Options carries provider construction settings. Region and Profile are
// only meaningful for Bedrock.
type Options struct {
	Model   string
	Region  string
	Profile string
}

// New creates a provider by name.
func New(ctx context.Context, provider string, opts Options) (Invoker, error) {
	switch provider {
	case "bedrock":
		return NewBedrock(ctx, opts.Model, opts.Region, opts.Profile)
	case "anthropic":
		return NewAnthropic(opts.Model)
	case "openai":
		return NewOpenAI(opts.Model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
