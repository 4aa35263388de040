package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/redact"
	"google.golang.org/genai"
)

// Client implements generation.Completer on the Gemini API.
type Client struct {
	logger    *slog.Logger
	baseURL   string
	transport http.RoundTripper
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the HTTP transport every call is sent through.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// NewClient creates a Client for the endpoint in cfg.
//
// The API key is not read from cfg. It arrives with every
// generation.Completion, and a fresh genai client is built per call so the
// key is never cached.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}

	c := &Client{
		logger:    logger.With("component", "gemini_client"),
		baseURL:   baseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		return nil, fmt.Errorf("%w: transport cannot be nil", generation.ErrInvalidConfig)
	}

	return c, nil
}

// Complete sends one generateContent request and returns the concatenated
// text of the first candidate.
func (c *Client) Complete(
	ctx context.Context,
	req generation.Completion,
	onProgress generation.ProgressFunc,
) (string, error) {
	transport := &progressTransport{base: c.transport, onProgress: onProgress}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Transport: transport},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.baseURL,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}

	c.logger.DebugContext(ctx, "sending generateContent",
		"model", req.Model,
		"prompt_length", len(req.Prompt),
		"temperature", req.Temperature,
		"max_tokens", req.MaxTokens)

	onProgress.Report(generation.StageGenerating)
	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", c.mapError(ctx, err, transport.headersReceived)
	}
	onProgress.Report(generation.StageFinalizing)

	text, err := responseText(resp)
	if err != nil {
		c.logger.WarnContext(ctx, "generateContent returned no text", "error", err)
		return "", err
	}

	c.logger.DebugContext(ctx, "generateContent received", "content_length", len(text))
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrEmptyResponse)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in candidate", generation.ErrEmptyResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: finish reason %q", generation.ErrEmptyResponse, candidate.FinishReason)
	}
	return text, nil
}

// mapError translates genai errors into the generation taxonomy.
func (c *Client) mapError(ctx context.Context, err error, headersReceived bool) error {
	if upstream, ok := asUpstream(err); ok {
		c.logger.WarnContext(ctx, "generateContent rejected",
			"status", upstream.StatusCode,
			"body", redact.String(upstream.Body))
		return upstream
	}

	if headersReceived && ctx.Err() == nil {
		c.logger.WarnContext(ctx, "generateContent body unreadable", "error", redact.Error(err))
		return fmt.Errorf("%w: decode response: %v", generation.ErrEmptyResponse, err)
	}

	c.logger.WarnContext(ctx, "generateContent transport failure", "error", redact.Error(err))
	return &generation.TransportError{Err: err}
}

// asUpstream extracts an HTTP failure from err. genai returns APIError by
// value; the pointer form is accepted too.
func asUpstream(err error) (*generation.UpstreamError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return upstreamFrom(apiErr), true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return upstreamFrom(*apiErrPtr), true
	}
	return nil, false
}

func upstreamFrom(apiErr genai.APIError) *generation.UpstreamError {
	body := apiErr.Message
	if apiErr.Status != "" {
		body = fmt.Sprintf("%s: %s", apiErr.Status, apiErr.Message)
	}
	return &generation.UpstreamError{StatusCode: apiErr.Code, Body: body}
}
