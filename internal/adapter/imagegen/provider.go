// Package imagegen turns infographic prompts into bitmaps. Each Gemini
// response shape has its own Provider; Chain tries them in order.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-planner/internal/domain"
	"course-planner/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Provider kinds accepted in configuration.
const (
	KindImagen = "imagen"
	KindGemini = "gemini"
)

// Provider normalises one image API response shape into a domain.Image.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (domain.Image, error)
}

// Chain tries each provider in order and returns the first image.
type Chain struct {
	providers []Provider
}

// NewChain builds a chain. With no providers every call reports
// domain.ErrImageGenerationDisabled.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// GenerateImage implements domain.ImageGenerator. When every provider fails
// the returned error joins all of their errors.
func (c *Chain) GenerateImage(ctx context.Context, prompt string) (domain.Image, error) {
	if len(c.providers) == 0 {
		return domain.Image{}, domain.ErrImageGenerationDisabled
	}

	var errs []error
	for _, p := range c.providers {
		start := time.Now()
		img, err := p.Generate(ctx, prompt)
		if err == nil {
			logger.Get().Debug("Image generated",
				zap.String("provider", p.Name()),
				zap.Int("bytes", len(img.Data)),
				zap.Duration("elapsed", time.Since(start)),
			)
			return img, nil
		}
		logger.Get().Warn("Image provider failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}
	return domain.Image{}, errors.Join(errs...)
}

// NewProviders builds providers for the configured kinds, in order.
// Unknown kinds are an error.
func NewProviders(client *genai.Client, kinds []string, imagenModel, geminiModel string) ([]Provider, error) {
	providers := make([]Provider, 0, len(kinds))
	for _, kind := range kinds {
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case KindImagen:
			providers = append(providers, NewPredictProvider(client.Models, imagenModel))
		case KindGemini:
			providers = append(providers, NewInlineProvider(client.Models, geminiModel))
		case "":
		default:
			return nil, fmt.Errorf("unsupported image provider: %s", kind)
		}
	}
	return providers, nil
}

// NewClient creates the genai client shared by the image providers.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

// Static assertion to ensure Chain implements ImageGenerator
var _ domain.ImageGenerator = (*Chain)(nil)
