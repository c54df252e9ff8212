package imagegen

import (
	"context"
	"strings"

	"course-planner/internal/domain"

	"google.golang.org/genai"
)

type contentAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// InlineProvider asks a multimodal Gemini model for an image; the bitmap
// comes back as inlineData in one of the candidate parts.
type InlineProvider struct {
	api   contentAPI
	model string
}

func NewInlineProvider(api contentAPI, model string) *InlineProvider {
	return &InlineProvider{api: api, model: model}
}

func (p *InlineProvider) Name() string { return KindGemini + ":" + p.model }

func (p *InlineProvider) Generate(ctx context.Context, prompt string) (domain.Image, error) {
	resp, err := p.api.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return domain.Image{}, err
	}
	return fromContentResponse(resp)
}

func fromContentResponse(resp *genai.GenerateContentResponse) (domain.Image, error) {
	if resp == nil {
		return domain.Image{}, domain.ErrNoImageData
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			if mime := part.InlineData.MIMEType; mime != "" && !strings.HasPrefix(mime, "image/") {
				continue
			}
			return domain.Image{Data: part.InlineData.Data, MIMEType: mimeOrDefault(part.InlineData.MIMEType)}, nil
		}
	}
	return domain.Image{}, domain.ErrNoImageData
}
