package deepseek

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/redact"
)

// Client implements generation.Completer for chat-completions endpoints.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient creates a Client for the endpoint in cfg. The API key is not taken
// from cfg: it travels with each generation.Completion and is never cached.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultDeepSeekBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		logger:     logger.With("component", "deepseek_client"),
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		return nil, fmt.Errorf("%w: http client cannot be nil", generation.ErrInvalidConfig)
	}

	return c, nil
}

// Complete sends one chat-completion request and returns the message content.
func (c *Client) Complete(
	ctx context.Context,
	req generation.Completion,
	onProgress generation.ProgressFunc,
) (string, error) {
	headersReceived := false

	client := openai.NewClient(
		option.WithAPIKey(req.APIKey),
		option.WithBaseURL(c.baseURL),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
		option.WithMiddleware(func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
			resp, err := next(r)
			if err == nil {
				headersReceived = true
				onProgress.Report(generation.StageProcessing)
			}
			return resp, err
		}),
	)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	c.logger.DebugContext(ctx, "sending chat completion",
		"model", req.Model,
		"prompt_length", len(req.Prompt),
		"temperature", req.Temperature,
		"max_tokens", req.MaxTokens)

	onProgress.Report(generation.StageGenerating)
	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", c.mapError(ctx, err, headersReceived)
	}
	onProgress.Report(generation.StageFinalizing)

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", generation.ErrEmptyResponse)
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: finish reason %q", generation.ErrEmptyResponse, completion.Choices[0].FinishReason)
	}

	c.logger.DebugContext(ctx, "chat completion received",
		"content_length", len(content),
		"finish_reason", completion.Choices[0].FinishReason)

	return content, nil
}

// mapError translates SDK errors into the generation taxonomy.
func (c *Client) mapError(ctx context.Context, err error, headersReceived bool) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		upstream := &generation.UpstreamError{
			StatusCode: apiErr.StatusCode,
			Body:       upstreamBody(apiErr),
		}
		c.logger.WarnContext(ctx, "chat completion rejected",
			"status", upstream.StatusCode,
			"body", redact.String(upstream.Body))
		return upstream
	}

	if headersReceived && ctx.Err() == nil {
		// A 2xx whose body could not be decoded carries no usable text.
		c.logger.WarnContext(ctx, "chat completion body unreadable", "error", redact.Error(err))
		return fmt.Errorf("%w: decode completion: %v", generation.ErrEmptyResponse, err)
	}

	c.logger.WarnContext(ctx, "chat completion transport failure", "error", redact.Error(err))
	return &generation.TransportError{Err: err}
}

// upstreamBody returns the error response body as received, falling back to
// the SDK's parsed view of it.
func upstreamBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		if body, err := io.ReadAll(apiErr.Response.Body); err == nil && len(body) > 0 {
			return string(body)
		}
	}
	if raw := apiErr.RawJSON(); raw != "" {
		return raw
	}
	return apiErr.Message
}
