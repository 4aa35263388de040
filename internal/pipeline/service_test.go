package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/events"
	"github.com/phrazzld/slidegen/internal/fallback"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/mocks"
	"github.com/phrazzld/slidegen/internal/pipeline"
	"github.com/phrazzld/slidegen/internal/platform/deepseek"
	"github.com/phrazzld/slidegen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSettings(version domain.SchemaVersion) pipeline.Settings {
	return pipeline.Settings{
		Model:              "deepseek-chat",
		ViralTemperature:   0.9,
		OrganicTemperature: 0.7,
		MaxTokens:          1500,
		SchemaVersion:      version,
	}
}

func validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		FormatID:            domain.FormatTop5Tips,
		Language:            domain.LanguageEnglish,
		Mode:                domain.ModeViral,
		BusinessDescription: "sleep coaching for toddlers",
		APIKey:              "sk-test-key",
	}
}

const variationsReply = `{
  "title": "5 toddler sleep fixes",
  "hookVariations": ["your toddler fights bedtime?", "bedtime battles end here", "the 5 minute bedtime fix"],
  "selectedHookIndex": 1,
  "slides": ["dim the lights", "same story every night", "no screens after dinner", "warm bath", "white noise"],
  "cta": "follow for more sleep tips",
  "searchTerms": ["toddler bed", "night light", "bedtime story", "warm bath", "white noise machine"]
}`

func newService(t *testing.T, completer generation.Completer, emitter events.EventEmitter, version domain.SchemaVersion) *pipeline.Service {
	t.Helper()
	svc, err := pipeline.NewService(newTestLogger(), completer, emitter, testSettings(version))
	require.NoError(t, err)
	return svc
}

type stageRecorder struct {
	mu     sync.Mutex
	stages []generation.ProgressStage
}

func (r *stageRecorder) record(stage generation.ProgressStage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

func (r *stageRecorder) get() []generation.ProgressStage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]generation.ProgressStage(nil), r.stages...)
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := pipeline.NewService(nil, &mocks.MockCompleter{}, nil, pipeline.Settings{})
	assert.Error(t, err)

	_, err = pipeline.NewService(newTestLogger(), nil, nil, pipeline.Settings{})
	assert.Error(t, err)

	svc, err := pipeline.NewService(newTestLogger(), &mocks.MockCompleter{}, nil, pipeline.Settings{})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	completer := mocks.NewMockCompleterWithReply("Here you go:\n```json\n" + variationsReply + "\n```")
	svc := newService(t, completer, nil, domain.SchemaHookVariations)

	stages := &stageRecorder{}
	result, err := svc.Generate(context.Background(), validRequest(), stages.record)
	require.NoError(t, err)

	assert.False(t, result.Fallback)
	assert.Empty(t, result.Notice)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "5 toddler sleep fixes", result.Content.Title)
	assert.Equal(t, "bedtime battles end here", result.Content.Hook)
	assert.Equal(t, 1, result.Content.SelectedHookIndex)
	assert.Equal(t, "Top 5 Tips", result.Content.Format)
	require.NoError(t, result.Content.Validate())

	assert.Equal(t, []generation.ProgressStage{
		generation.StagePreparing,
		generation.StageGenerating,
		generation.StageProcessing,
		generation.StageFinalizing,
	}, stages.get())

	calls := completer.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sk-test-key", calls[0].APIKey)
	assert.Equal(t, "deepseek-chat", calls[0].Model)
	assert.InDelta(t, 0.9, calls[0].Temperature, 1e-9)
	assert.Equal(t, 1500, calls[0].MaxTokens)
	assert.Contains(t, calls[0].Prompt, "sleep coaching for toddlers")
}

func TestGenerate_TemperatureFollowsMode(t *testing.T) {
	t.Parallel()

	completer := mocks.NewMockCompleterWithReply(variationsReply)
	svc := newService(t, completer, nil, domain.SchemaHookVariations)

	req := validRequest()
	req.Mode = domain.ModeOrganic
	_, err := svc.Generate(context.Background(), req, nil)
	require.NoError(t, err)

	calls := completer.Calls()
	require.Len(t, calls, 1)
	assert.InDelta(t, 0.7, calls[0].Temperature, 1e-9)
}

func TestGenerate_SetupError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.GenerationRequest)
	}{
		{name: "missing api key", mutate: func(r *domain.GenerationRequest) { r.APIKey = "" }},
		{name: "blank api key", mutate: func(r *domain.GenerationRequest) { r.APIKey = "   " }},
		{name: "missing business description", mutate: func(r *domain.GenerationRequest) { r.BusinessDescription = "" }},
		{name: "setup checked before format", mutate: func(r *domain.GenerationRequest) {
			r.APIKey = ""
			r.FormatID = "nope"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			completer := mocks.NewMockCompleterWithReply(variationsReply)
			svc := newService(t, completer, nil, domain.SchemaHookVariations)

			req := validRequest()
			tc.mutate(&req)

			stages := &stageRecorder{}
			result, err := svc.Generate(context.Background(), req, stages.record)
			assert.ErrorIs(t, err, generation.ErrSetup)
			assert.Nil(t, result)
			assert.Zero(t, completer.CallCount(), "no call without setup")
			assert.Empty(t, stages.get())
		})
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	t.Parallel()

	completer := mocks.NewMockCompleterWithReply(variationsReply)
	svc := newService(t, completer, nil, domain.SchemaHookVariations)

	req := validRequest()
	req.FormatID = domain.FormatCustom

	result, err := svc.Generate(context.Background(), req, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrCustomFormatRequired)
	assert.Zero(t, completer.CallCount())
}

func TestGenerate_FallbackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		completer  *mocks.MockCompleter
		wantReason string
	}{
		{
			name:       "transport",
			completer:  mocks.NewMockCompleterWithError(&generation.TransportError{Err: errors.New("connection refused")}),
			wantReason: generation.ReasonTransport,
		},
		{
			name:       "upstream",
			completer:  mocks.NewMockCompleterWithError(&generation.UpstreamError{StatusCode: 401, Body: "bad key sk-secret123456789"}),
			wantReason: generation.ReasonUpstream,
		},
		{
			name:       "empty response",
			completer:  mocks.NewMockCompleterWithError(generation.ErrEmptyResponse),
			wantReason: generation.ReasonEmptyResponse,
		},
		{
			name:       "no json",
			completer:  mocks.NewMockCompleterWithReply("sorry, I can't help with that"),
			wantReason: generation.ReasonNoJSONFound,
		},
		{
			name:       "malformed json",
			completer:  mocks.NewMockCompleterWithReply(`{"title": "x",}`),
			wantReason: generation.ReasonMalformedJSON,
		},
		{
			name:       "missing slides",
			completer:  mocks.NewMockCompleterWithReply(`{"title":"x","hookVariations":["a"],"cta":"c","searchTerms":["a","b","c","d","e"]}`),
			wantReason: generation.ReasonSchemaViolation,
		},
		{
			name:       "unclassified error",
			completer:  mocks.NewMockCompleterWithError(errors.New("boom")),
			wantReason: generation.ReasonUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(t, tc.completer, nil, domain.SchemaHookVariations)

			result, err := svc.Generate(context.Background(), validRequest(), nil)
			require.NoError(t, err)

			assert.True(t, result.Fallback)
			assert.Equal(t, pipeline.DemoNotice, result.Notice)
			assert.Equal(t, tc.wantReason, result.Reason)
			assert.Equal(t, fallback.Content(domain.FormatTop5Tips, "", domain.LanguageEnglish), result.Content)
			assert.Equal(t, 1, tc.completer.CallCount(), "never retried")
		})
	}
}

func TestGenerate_FallbackMatchesHookSchema(t *testing.T) {
	t.Parallel()

	svc := newService(t, mocks.NewMockCompleterWithError(generation.ErrEmptyResponse), nil, domain.SchemaHook)

	req := validRequest()
	req.Language = domain.LanguageSpanish
	req.FormatID = domain.FormatMyths

	result, err := svc.Generate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Nil(t, result.Content.HookVariations)
	assert.Equal(t, "mitos sobre la hora de dormir", result.Content.Title)
	assert.NoError(t, result.Content.Validate())
}

func TestGenerate_HookSchema(t *testing.T) {
	t.Parallel()

	reply := `{"title":"t","hook":"h","slides":["1","2","3","4","5"],"cta":"c","searchTerms":["a","b","c"]}`
	svc := newService(t, mocks.NewMockCompleterWithReply(reply), nil, domain.SchemaHook)

	result, err := svc.Generate(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, "h", result.Content.Hook)
	assert.Nil(t, result.Content.HookVariations)
	assert.Len(t, result.Content.SearchTerms, domain.MinSearchTerms, "padded from the demo terms")
}

func TestGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	completer := &mocks.MockCompleter{
		CompleteFn: func(ctx context.Context, req generation.Completion, onProgress generation.ProgressFunc) (string, error) {
			cancel()
			return "", &generation.TransportError{Err: ctx.Err()}
		},
	}
	svc := newService(t, completer, nil, domain.SchemaHookVariations)

	result, err := svc.Generate(ctx, validRequest(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestGenerate_EmitsProgressEvents(t *testing.T) {
	t.Parallel()

	emitter := events.NewInMemoryEventEmitter(newTestLogger())

	var mu sync.Mutex
	var received []*events.ProgressEvent
	emitter.RegisterHandler(events.HandlerFunc(func(ctx context.Context, event *events.ProgressEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event)
		return nil
	}))
	emitter.RegisterHandler(events.HandlerFunc(func(ctx context.Context, event *events.ProgressEvent) error {
		return errors.New("observer failed")
	}))

	svc := newService(t, mocks.NewMockCompleterWithReply(variationsReply), emitter, domain.SchemaHookVariations)

	result, err := svc.Generate(context.Background(), validRequest(), nil)
	require.NoError(t, err, "observer failures never fail a run")
	assert.False(t, result.Fallback)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 4)
	for _, e := range received {
		assert.Equal(t, result.RunID, e.RunID)
	}
	assert.Equal(t, generation.StagePreparing, received[0].Stage)
	assert.Equal(t, generation.StageFinalizing, received[3].Stage)
}

func TestGenerate_ConcurrentRuns(t *testing.T) {
	t.Parallel()

	svc := newService(t, mocks.NewMockCompleterWithReply(variationsReply), nil, domain.SchemaHookVariations)

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Generate(context.Background(), validRequest(), nil)
			if err != nil || result.Fallback {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, failures.Load())
}

// upstream stands in for the chat-completions endpoint.
func upstream(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func chatCompletion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "deepseek-chat",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func endToEndService(t *testing.T, baseURL string) *pipeline.Service {
	t.Helper()
	client, err := deepseek.NewClient(newTestLogger(), config.LLMConfig{BaseURL: baseURL})
	require.NoError(t, err)
	return newService(t, client, nil, domain.SchemaHookVariations)
}

func TestEndToEnd_WellFormedReply(t *testing.T) {
	t.Parallel()

	server, calls := upstream(t, http.StatusOK, chatCompletion(variationsReply))
	svc := endToEndService(t, server.URL)

	result, err := svc.Generate(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Empty(t, result.Notice)
	assert.EqualValues(t, 1, calls.Load())

	var want domain.GeneratedContent
	require.NoError(t, json.Unmarshal([]byte(variationsReply), &want))
	want.Hook = want.HookVariations[want.SelectedHookIndex]
	want.Format = "Top 5 Tips"
	assert.Equal(t, want, result.Content)
}

func TestEndToEnd_UnauthorizedFallsBack(t *testing.T) {
	t.Parallel()

	server, calls := upstream(t, http.StatusUnauthorized,
		`{"error":{"message":"Authentication Fails, Your api key: sk-test-key is invalid","type":"authentication_error"}}`)
	svc := endToEndService(t, server.URL)

	result, err := svc.Generate(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, generation.ReasonUpstream, result.Reason)
	assert.Equal(t, fallback.Content(domain.FormatTop5Tips, "", domain.LanguageEnglish), result.Content)
	assert.False(t, strings.Contains(result.Notice, "sk-test-key"), "raw upstream text never reaches the user")
	assert.EqualValues(t, 1, calls.Load())
}

func TestEndToEnd_MissingKeyNeverCallsUpstream(t *testing.T) {
	t.Parallel()

	server, calls := upstream(t, http.StatusOK, chatCompletion(variationsReply))
	svc := endToEndService(t, server.URL)

	req := validRequest()
	req.APIKey = ""

	_, err := svc.Generate(context.Background(), req, nil)
	assert.ErrorIs(t, err, generation.ErrSetup)
	assert.Zero(t, calls.Load())
}

func TestGenerate_LogsRedactedFailure(t *testing.T) {
	t.Parallel()

	buf, log := logger.Capture()
	completer := mocks.NewMockCompleterWithError(&generation.UpstreamError{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"error":{"message":"Incorrect API key provided: sk-live0123456789abcdef"}}`,
	})
	svc, err := pipeline.NewService(log, completer, nil, testSettings(domain.SchemaHookVariations))
	require.NoError(t, err)

	result, err := svc.Generate(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	require.True(t, result.Fallback)

	assert.NotContains(t, buf.String(), "sk-live0123456789abcdef")

	entries, err := buf.Entries()
	require.NoError(t, err)

	var warned bool
	for _, e := range entries {
		if e["msg"] == "generation failed, serving demo content" {
			warned = true
			assert.Equal(t, "pipeline", e["component"])
			assert.Equal(t, generation.ReasonUpstream, e["reason"])
			assert.Equal(t, result.RunID.String(), e["run_id"])
		}
	}
	assert.True(t, warned, "failure is logged for diagnostics")
}
