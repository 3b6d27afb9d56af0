// Package verify checks whether an API key can actually be used against the
// remote completion service.
package verify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultModel is the model the probe request is sent to.
const DefaultModel = openai.GPT4oMini

const probeMessage = "Hi"

// Outcome is the result of one verification attempt. Diagnostic is empty on
// success and otherwise names the failure class and message.
type Outcome struct {
	OK         bool
	Diagnostic string
}

// Verifier performs a single best-effort verification of a credential.
// Implementations never return errors; failures are folded into Outcome.
type Verifier interface {
	Verify(ctx context.Context, candidate string) Outcome
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(ctx context.Context, candidate string) Outcome

func (f VerifierFunc) Verify(ctx context.Context, candidate string) Outcome {
	return f(ctx, candidate)
}

// OpenAIVerifier sends a one-message chat completion with the candidate key
// and expects a non-empty assistant reply. It does not retry and sets no
// timeout of its own.
type OpenAIVerifier struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures an OpenAIVerifier.
type Option func(*OpenAIVerifier)

// WithBaseURL points the verifier at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(v *OpenAIVerifier) {
		v.baseURL = url
	}
}

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(v *OpenAIVerifier) {
		v.model = model
	}
}

// WithHTTPClient replaces the client's default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(v *OpenAIVerifier) {
		v.httpClient = c
	}
}

// NewOpenAI creates a verifier for the OpenAI chat completions API.
func NewOpenAI(opts ...Option) *OpenAIVerifier {
	v := &OpenAIVerifier{model: DefaultModel}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify implements Verifier.
func (v *OpenAIVerifier) Verify(ctx context.Context, candidate string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Diagnostic: fmt.Sprintf("panic: %v", r)}
		}
	}()

	config := openai.DefaultConfig(candidate)
	if v.baseURL != "" {
		config.BaseURL = v.baseURL
	}
	if v.httpClient != nil {
		config.HTTPClient = v.httpClient
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: v.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: probeMessage},
		},
	})
	if err != nil {
		return Outcome{Diagnostic: Describe(err)}
	}
	if len(resp.Choices) == 0 {
		return Outcome{Diagnostic: "EmptyResponse: completion returned no choices"}
	}
	if resp.Choices[0].Message.Content == "" {
		return Outcome{Diagnostic: "EmptyResponse: assistant reply has no content"}
	}
	return Outcome{OK: true}
}

// Describe renders err as "<class>: <message>" for operator diagnostics.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("APIError: %s (status %d)", apiErr.Message, apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("RequestError: %v", reqErr)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "Canceled: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "DeadlineExceeded: " + err.Error()
	}

	return fmt.Sprintf("%s: %v", strings.TrimPrefix(fmt.Sprintf("%T", err), "*"), err)
}
