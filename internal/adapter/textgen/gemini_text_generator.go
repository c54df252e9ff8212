package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-planner/internal/domain"
	"course-planner/internal/logger"
	"course-planner/internal/metrics"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// ErrEmptyResponse is reported when the model answers without any candidate.
var ErrEmptyResponse = errors.New("model returned no candidates")

// GeminiTextGenerator implements domain.TextGenerator on top of a langchaingo model.
type GeminiTextGenerator struct {
	model   llms.Model
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewGeminiTextGenerator wraps an existing model. A zero timeout leaves the
// deadline to the caller's context.
func NewGeminiTextGenerator(model llms.Model, timeout time.Duration, m *metrics.Metrics) *GeminiTextGenerator {
	return &GeminiTextGenerator{model: model, timeout: timeout, metrics: m}
}

// NewGoogleAIModel creates the Gemini backed langchaingo model.
func NewGoogleAIModel(ctx context.Context, apiKey, modelName string) (llms.Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	logger.Get().Info("Initializing Gemini text model", zap.String("model", modelName))
	return googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
}

// GenerateText sends prompt as a single user turn and returns the first
// candidate's text.
func (g *GeminiTextGenerator) GenerateText(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
	cfg = cfg.WithDefaults()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.call(ctx, prompt, cfg)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		g.metrics.RecordGeneration("text", "error", elapsed)
		logger.Get().Error("Gemini text generation failed",
			zap.Error(err),
			zap.Int("prompt_length", len(prompt)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return domain.Fail[string](err.Error())
	}

	g.metrics.RecordGeneration("text", "success", elapsed)
	logger.Get().Debug("Gemini text generation succeeded",
		zap.Int("response_length", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return domain.Ok(text)
}

func (g *GeminiTextGenerator) call(ctx context.Context, prompt string, cfg domain.TextConfig) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text model panicked: %v", r)
		}
	}()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := g.model.GenerateContent(ctx, messages,
		llms.WithTemperature(cfg.Temperature),
		llms.WithTopK(cfg.TopK),
		llms.WithTopP(cfg.TopP),
		llms.WithMaxTokens(cfg.MaxOutputTokens),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

// Static assertion to ensure GeminiTextGenerator implements TextGenerator
var _ domain.TextGenerator = (*GeminiTextGenerator)(nil)
