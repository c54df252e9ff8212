package imagegen

import (
	"context"

	"course-planner/internal/domain"

	"google.golang.org/genai"
)

type imagesAPI interface {
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// PredictProvider calls the Imagen predict endpoint, whose response carries
// the bitmap in generatedImages[0].image.
type PredictProvider struct {
	api   imagesAPI
	model string
}

func NewPredictProvider(api imagesAPI, model string) *PredictProvider {
	return &PredictProvider{api: api, model: model}
}

func (p *PredictProvider) Name() string { return KindImagen + ":" + p.model }

func (p *PredictProvider) Generate(ctx context.Context, prompt string) (domain.Image, error) {
	resp, err := p.api.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
	})
	if err != nil {
		return domain.Image{}, err
	}
	return fromImagesResponse(resp)
}

func fromImagesResponse(resp *genai.GenerateImagesResponse) (domain.Image, error) {
	if resp == nil {
		return domain.Image{}, domain.ErrNoImageData
	}
	for _, gen := range resp.GeneratedImages {
		if gen == nil || gen.Image == nil || len(gen.Image.ImageBytes) == 0 {
			continue
		}
		return domain.Image{Data: gen.Image.ImageBytes, MIMEType: mimeOrDefault(gen.Image.MIMEType)}, nil
	}
	return domain.Image{}, domain.ErrNoImageData
}

func mimeOrDefault(mime string) string {
	if mime == "" {
		return "image/png"
	}
	return mime
}
