package domain

import (
	"context"
	"errors"
)

// Sampling defaults applied to any TextConfig field left at zero.
const (
	DefaultTemperature     = 0.7
	DefaultTopK            = 40
	DefaultTopP            = 0.95
	DefaultMaxOutputTokens = 2048
)

// TextConfig holds the sampling parameters of a text generation call.
type TextConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// WithDefaults fills every unset field with its default.
func (c TextConfig) WithDefaults() TextConfig {
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.TopP == 0 {
		c.TopP = DefaultTopP
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = DefaultMaxOutputTokens
	}
	return c
}

// TextGenerator produces free text for a prompt. Failures are reported in
// the Result, never as a panic.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg TextConfig) Result[string]
}

// Image is a generated bitmap.
type Image struct {
	Data     []byte
	MIMEType string
}

// ErrNoImageData is returned when an image call succeeds without a bitmap.
var ErrNoImageData = errors.New("image response contained no image data")

// ErrImageGenerationDisabled is returned when no image provider is configured.
var ErrImageGenerationDisabled = errors.New("image generation is disabled")

// ImageGenerator renders a prompt into a bitmap.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (Image, error)
}
