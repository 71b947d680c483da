package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

// anthropicBedrockVersion is the version marker Bedrock requires in the body
// of every Anthropic-model invocation.
const anthropicBedrockVersion = "bedrock-2023-05-31"

// invokeModelAPI is the slice of the Bedrock runtime client we use. Tests
// substitute a fake.
type invokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Bedrock implements the Invoker interface against AWS Bedrock's runtime
// API. The model identifier may be a plain model ID or an inference profile
// ARN; it is treated as opaque.
type Bedrock struct {
	client invokeModelAPI
	model  string
}

// NewBedrock creates a Bedrock provider using the shared AWS credential
// chain. An empty region or profile defers to the environment and shared
// config files.
func NewBedrock(ctx context.Context, model, region, profile string) (*Bedrock, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	if profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Bedrock{
		client: bedrockruntime.NewFromConfig(cfg),
		model:  model,
	}, nil
}

func (b *Bedrock) Name() string  { return "bedrock" }
func (b *Bedrock) Model() string { return b.model }

func (b *Bedrock) Invoke(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	body := claudeRequest{
		AnthropicVersion: anthropicBedrockVersion,
		MaxTokens:        maxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: []claudeContent{{Type: "text", Text: req.Prompt}}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.model),
		Body:        payload,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return Response{}, classifyBedrockError(err)
	}

	var result claudeResponse
	if err := json.Unmarshal(out.Body, &result); err != nil {
		return Response{}, fmt.Errorf("parsing response: %w", err)
	}

	var content string
	for _, block := range result.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return Response{
		Content:    content,
		TokensUsed: result.Usage.InputTokens + result.Usage.OutputTokens,
	}, nil
}

func classifyBedrockError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException":
			return &throttleError{message: apiErr.ErrorMessage()}
		case "AccessDeniedException", "UnrecognizedClientException", "ExpiredTokenException":
			return &authError{message: apiErr.ErrorMessage()}
		}
	}
	return fmt.Errorf("invoking model: %w", err)
}

// claudeRequest is the Anthropic message body Bedrock expects.
type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string          `json:"role"`
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeBlock `json:"content"`
	Usage   claudeUsage   `json:"usage"`
}

type claudeBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
