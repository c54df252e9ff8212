package imagegen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"course-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeImagesAPI struct {
	resp   *genai.GenerateImagesResponse
	err    error
	model  string
	config *genai.GenerateImagesConfig
}

func (f *fakeImagesAPI) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	f.model, f.config = model, config
	return f.resp, f.err
}

type fakeContentAPI struct {
	resp   *genai.GenerateContentResponse
	err    error
	config *genai.GenerateContentConfig
}

func (f *fakeContentAPI) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.config = config
	return f.resp, f.err
}

type stubProvider struct {
	name  string
	img   domain.Image
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(ctx context.Context, prompt string) (domain.Image, error) {
	s.calls++
	return s.img, s.err
}

func TestPredictProvider(t *testing.T) {
	api := &fakeImagesAPI{resp: &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: nil},
			{Image: &genai.Image{ImageBytes: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}},
		},
	}}
	img, err := NewPredictProvider(api, "imagen-3.0-generate-002").Generate(context.Background(), "draw")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "imagen-3.0-generate-002", api.model)
	assert.Equal(t, "16:9", api.config.AspectRatio)
}

func TestPredictProvider_NoImageData(t *testing.T) {
	for _, resp := range []*genai.GenerateImagesResponse{
		nil,
		{},
		{GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{}}}},
	} {
		_, err := NewPredictProvider(&fakeImagesAPI{resp: resp}, "m").Generate(context.Background(), "p")
		assert.ErrorIs(t, err, domain.ErrNoImageData)
	}
}

func TestInlineProvider(t *testing.T) {
	api := &fakeContentAPI{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "Here is your infographic"},
				{InlineData: &genai.Blob{Data: []byte("jpeg"), MIMEType: "image/jpeg"}},
			}},
		}},
	}}
	img, err := NewInlineProvider(api, "gemini-img").Generate(context.Background(), "draw")

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), img.Data)
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Contains(t, api.config.ResponseModalities, "IMAGE")
}

func TestInlineProvider_NoImageData(t *testing.T) {
	textOnly := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}}}},
	}
	nonImage := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{
			{InlineData: &genai.Blob{Data: []byte("x"), MIMEType: "audio/wav"}},
		}}}},
	}
	for _, resp := range []*genai.GenerateContentResponse{nil, {}, {Candidates: []*genai.Candidate{{}}}, textOnly, nonImage} {
		_, err := NewInlineProvider(&fakeContentAPI{resp: resp}, "m").Generate(context.Background(), "p")
		assert.ErrorIs(t, err, domain.ErrNoImageData)
	}
}

func TestInlineProvider_TransportError(t *testing.T) {
	_, err := NewInlineProvider(&fakeContentAPI{err: errors.New("Error 503, Message: overloaded")}, "m").Generate(context.Background(), "p")
	assert.EqualError(t, err, "Error 503, Message: overloaded")
}

func TestChain_FirstImageWins(t *testing.T) {
	first := &stubProvider{name: "a", err: domain.ErrNoImageData}
	second := &stubProvider{name: "b", img: domain.Image{Data: []byte("ok"), MIMEType: "image/png"}}
	third := &stubProvider{name: "c", img: domain.Image{Data: []byte("unused")}}

	img, err := NewChain(first, second, third).GenerateImage(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), img.Data)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls)
}

func TestChain_AllFail(t *testing.T) {
	a := &stubProvider{name: "a", err: errors.New("Error 503, Status: UNAVAILABLE")}
	b := &stubProvider{name: "b", err: domain.ErrNoImageData}

	_, err := NewChain(a, b).GenerateImage(context.Background(), "p")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoImageData)
	assert.Contains(t, err.Error(), "a: Error 503")
}

func TestChain_Empty(t *testing.T) {
	_, err := NewChain().GenerateImage(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrImageGenerationDisabled)
}

func TestChain_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := &stubProvider{name: "a", err: context.Canceled}
	b := &stubProvider{name: "b", img: domain.Image{Data: []byte("x")}}

	_, err := NewChain(a, b).GenerateImage(ctx, "p")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, b.calls)
}

func TestFallbackReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Nil", nil, ""},
		{"Disabled", domain.ErrImageGenerationDisabled, ReasonDisabled},
		{"InvalidKey", errors.New("Error 400, Message: API key not valid. Please pass a valid API key., Status: INVALID_ARGUMENT"), ReasonConfig},
		{"Forbidden", errors.New("Error 403, Message: permission denied"), ReasonConfig},
		{"NoData", domain.ErrNoImageData, ReasonNoData},
		{"Outage", errors.New("Error 503, Status: UNAVAILABLE"), ReasonTransient},
		{"Deadline", context.DeadlineExceeded, ReasonTransient},
		{"JoinedConfigWins", errors.Join(domain.ErrNoImageData, errors.New("401 unauthenticated")), ReasonConfig},
		{"RefusedPortContains403", errors.New("imagen: dial tcp 10.2.4.1:4031: connect: connection refused"), ReasonTransient},
		{"RequestIDContains401", errors.New("Error 500, Message: internal error, request id 7f4013c2"), ReasonTransient},
		{"PermissionDeniedStatus", errors.New("Error 403, Message: caller lacks access, Status: PERMISSION_DENIED"), ReasonConfig},
		{"APIErrorForbidden", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}, ReasonConfig},
		{"APIErrorUnauthorizedPointer", &genai.APIError{Code: 401}, ReasonConfig},
		{"APIErrorBadKey", genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"}, ReasonConfig},
		{"APIErrorBadPrompt", genai.APIError{Code: 400, Message: "Image prompt rejected", Status: "INVALID_ARGUMENT"}, ReasonTransient},
		{"APIErrorUnavailableWithOddMessage", genai.APIError{Code: 503, Message: "backend 403-b overloaded"}, ReasonTransient},
		{"WrappedAPIError", fmt.Errorf("imagen: %w", genai.APIError{Code: 403}), ReasonConfig},
		{"JoinedProvidersOneForbidden", errors.Join(
			fmt.Errorf("imagen: %w", genai.APIError{Code: 503}),
			fmt.Errorf("gemini: %w", genai.APIError{Code: 401}),
		), ReasonConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackReason(tt.err))
		})
	}
}

func TestNewProviders(t *testing.T) {
	client := &genai.Client{Models: &genai.Models{}}

	providers, err := NewProviders(client, []string{"imagen", " Gemini ", ""}, "imagen-3", "gemini-img")
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "imagen:imagen-3", providers[0].Name())
	assert.Equal(t, "gemini:gemini-img", providers[1].Name())

	_, err = NewProviders(client, []string{"dalle"}, "a", "b")
	assert.EqualError(t, err, "unsupported image provider: dalle")
}
