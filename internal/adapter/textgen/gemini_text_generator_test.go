package textgen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"course-planner/internal/adapter/textgen"
	"course-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel records the last call and answers with a canned response.
type fakeModel struct {
	resp     *llms.ContentResponse
	err      error
	panicMsg string

	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.messages = messages
	for _, opt := range options {
		opt(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func answer(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func TestGenerateText_Success(t *testing.T) {
	model := &fakeModel{resp: answer("hello")}
	gen := textgen.NewGeminiTextGenerator(model, time.Second, nil)

	got := gen.GenerateText(context.Background(), "say hi", domain.TextConfig{})

	require.True(t, got.Success)
	assert.Equal(t, "hello", got.Data)

	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
	require.Len(t, model.messages[0].Parts, 1)
	assert.Equal(t, llms.TextContent{Text: "say hi"}, model.messages[0].Parts[0])
}

func TestGenerateText_DefaultSampling(t *testing.T) {
	model := &fakeModel{resp: answer("x")}
	textgen.NewGeminiTextGenerator(model, 0, nil).GenerateText(context.Background(), "p", domain.TextConfig{})

	assert.Equal(t, 0.7, model.opts.Temperature)
	assert.Equal(t, 40, model.opts.TopK)
	assert.Equal(t, 0.95, model.opts.TopP)
	assert.Equal(t, 2048, model.opts.MaxTokens)
}

func TestGenerateText_OverridesAreIndependent(t *testing.T) {
	model := &fakeModel{resp: answer("x")}
	textgen.NewGeminiTextGenerator(model, 0, nil).GenerateText(context.Background(), "p", domain.TextConfig{Temperature: 0.2, MaxOutputTokens: 512})

	assert.Equal(t, 0.2, model.opts.Temperature)
	assert.Equal(t, 40, model.opts.TopK)
	assert.Equal(t, 0.95, model.opts.TopP)
	assert.Equal(t, 512, model.opts.MaxTokens)
}

func TestGenerateText_Failures(t *testing.T) {
	tests := []struct {
		name    string
		model   *fakeModel
		wantErr string
	}{
		{"TransportError", &fakeModel{err: errors.New("googleapi: Error 503: unavailable")}, "googleapi: Error 503: unavailable"},
		{"NoCandidates", &fakeModel{resp: &llms.ContentResponse{}}, textgen.ErrEmptyResponse.Error()},
		{"NilResponse", &fakeModel{}, textgen.ErrEmptyResponse.Error()},
		{"Panic", &fakeModel{panicMsg: "boom"}, "text model panicked: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := textgen.NewGeminiTextGenerator(tt.model, 0, nil)
			var got domain.Result[string]
			assert.NotPanics(t, func() {
				got = gen.GenerateText(context.Background(), "p", domain.TextConfig{})
			})
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantErr, got.Error)
		})
	}
}

func TestNewGoogleAIModel_Validation(t *testing.T) {
	_, err := textgen.NewGoogleAIModel(context.Background(), "", "gemini-2.0-flash-exp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key cannot be empty")

	_, err = textgen.NewGoogleAIModel(context.Background(), "key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model name cannot be empty")
}
