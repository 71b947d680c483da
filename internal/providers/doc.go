// Package providers implements the Invoker interface for each supported
// model backend.
//
// Supported providers: AWS Bedrock (Anthropic models via InvokeModel, the
// default), Anthropic's Messages API directly, and OpenAI via the go-openai
// client.
//
// Every invocation is a single attempt: auth and throttle rejections are
// surfaced as typed errors ([IsAuthError], [IsThrottle]) for classification
// at the call site, never retried here. The Bedrock client is injected
// through a one-method interface and the Anthropic base URL is overridable
// so tests can run against fakes and httptest servers.
//
// Use [New] to obtain an Invoker by provider name.
package providers
