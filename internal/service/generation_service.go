package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"course-planner/internal/adapter/imagegen"
	"course-planner/internal/cache"
	"course-planner/internal/domain"
	"course-planner/internal/llmjson"
	"course-planner/internal/logger"
	"course-planner/internal/metrics"
	"course-planner/internal/placeholder"
	"course-planner/internal/prompt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const defaultMaxImageWorkers = 3

// PromotionRequest is the input of GeneratePromotion. Curriculum, Schedule
// and Fee are optional.
type PromotionRequest struct {
	Info       domain.CourseInfo
	Curriculum []domain.DayCurriculum
	Schedule   *domain.Schedule
	Fee        string
}

// ImageRequest is the input of GenerateImage.
type ImageRequest struct {
	UnitName   string
	Objectives []string
	Style      domain.Style
	Summary    *domain.InfographicSummary
	Category   domain.Category
}

// GenerationService turns course metadata into generated course material.
// Every method reports failures inside the returned Result.
type GenerationService interface {
	GenerateText(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string]
	GenerateClassNames(ctx context.Context, topic, audience, keywords string) domain.Result[[]string]
	GenerateDayCurriculum(ctx context.Context, info domain.CourseInfo, day int) domain.Result[domain.DayCurriculum]
	GenerateCourse(ctx context.Context, info domain.CourseInfo) domain.Result[[]domain.DayCurriculum]
	GeneratePromotion(ctx context.Context, req PromotionRequest) domain.Result[string]
	GenerateImage(ctx context.Context, req ImageRequest) domain.Result[domain.InfographicResult]
	GenerateInfographics(ctx context.Context, info domain.CourseInfo, curriculum []domain.DayCurriculum, style domain.Style) []domain.InfographicResult
}

// GenerationOptions tunes fan-out. Zero values pick defaults.
type GenerationOptions struct {
	MaxImageWorkers int
}

type generationService struct {
	text    domain.TextGenerator
	images  domain.ImageGenerator
	metrics *metrics.Metrics
	opts    GenerationOptions
	group   singleflight.Group
}

// NewGenerationService wires the generation pipeline. images may be nil, in
// which case every image request yields a placeholder.
func NewGenerationService(text domain.TextGenerator, images domain.ImageGenerator, m *metrics.Metrics, opts GenerationOptions) GenerationService {
	if opts.MaxImageWorkers <= 0 {
		opts.MaxImageWorkers = defaultMaxImageWorkers
	}
	return &generationService{
		text:    text,
		images:  images,
		metrics: m,
		opts:    opts,
	}
}

func (s *generationService) GenerateText(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
	return s.text.GenerateText(ctx, prompt, cfg)
}

type classNamesPayload struct {
	Suggestions []string `json:"suggestions"`
}

// GenerateClassNames drafts a fresh list on every call. Identical requests
// that are in flight at the same time share one model call; finished
// results are never replayed.
func (s *generationService) GenerateClassNames(ctx context.Context, topic, audience, keywords string) domain.Result[[]string] {
	key := cache.HashParams(topic, audience, keywords)

	v, _, shared := s.group.Do(key, func() (interface{}, error) {
		return s.generateClassNames(ctx, topic, audience, keywords), nil
	})
	if shared {
		s.metrics.RecordSingleflightDedup("class_names")
	}
	return v.(domain.Result[[]string])
}

func (s *generationService) generateClassNames(ctx context.Context, topic, audience, keywords string) domain.Result[[]string] {
	start := time.Now()
	raw := s.text.GenerateText(ctx, prompt.ClassNames(topic, audience, keywords), domain.TextConfig{})
	if !raw.Success {
		s.record("class_names", "error", start)
		return domain.FailFrom[[]string](raw)
	}

	parsed := llmjson.Decode[classNamesPayload](raw.Data)
	if !parsed.Success || len(parsed.Data.Suggestions) == 0 {
		logger.Get().Warn("Failed to parse class names response", zap.String("response", raw.Data))
		s.record("class_names", "parse_error", start)
		return domain.Fail[[]string](domain.MsgParseFailure)
	}
	s.record("class_names", "success", start)
	return domain.Ok(parsed.Data.Suggestions)
}

func (s *generationService) GenerateDayCurriculum(ctx context.Context, info domain.CourseInfo, day int) domain.Result[domain.DayCurriculum] {
	start := time.Now()
	raw := s.text.GenerateText(ctx, prompt.DayCurriculum(info, day), domain.TextConfig{})
	if !raw.Success {
		s.record("curriculum", "error", start)
		return domain.FailFrom[domain.DayCurriculum](raw)
	}

	parsed := llmjson.Decode[domain.DayCurriculum](raw.Data)
	if parsed.Success && isEmptyDay(parsed.Data) {
		parsed = domain.Fail[domain.DayCurriculum](domain.MsgParseFailure)
	}
	if !parsed.Success {
		logger.Get().Warn("Failed to parse curriculum response",
			zap.Int("day", day),
			zap.String("response", raw.Data))
		s.record("curriculum", "parse_error", start)
		return parsed
	}
	s.record("curriculum", "success", start)
	return parsed
}

// isEmptyDay reports a reply such as null or {} that decoded without error
// but carries no plan.
func isEmptyDay(d domain.DayCurriculum) bool {
	return strings.TrimSpace(d.UnitName) == "" && len(d.TeachingContent) == 0
}

// GenerateCourse plans days 1..TotalDays in order and stops at the first
// failing day.
func (s *generationService) GenerateCourse(ctx context.Context, info domain.CourseInfo) domain.Result[[]domain.DayCurriculum] {
	if info.TotalDays <= 0 {
		return domain.Fail[[]domain.DayCurriculum]("課程天數必須大於 0")
	}

	days := make([]domain.DayCurriculum, 0, info.TotalDays)
	for day := 1; day <= info.TotalDays; day++ {
		if err := ctx.Err(); err != nil {
			return domain.Fail[[]domain.DayCurriculum](err.Error())
		}
		r := s.GenerateDayCurriculum(ctx, info, day)
		if !r.Success {
			logger.Get().Warn("Course generation stopped",
				zap.Int("day", day),
				zap.String("error", r.Error))
			return domain.Fail[[]domain.DayCurriculum](fmt.Sprintf("第 %d 天：%s", day, r.Error))
		}
		days = append(days, r.Data)
	}
	return domain.Ok(days)
}

// GeneratePromotion returns the model's prose as-is.
func (s *generationService) GeneratePromotion(ctx context.Context, req PromotionRequest) domain.Result[string] {
	start := time.Now()
	r := s.text.GenerateText(ctx, prompt.Promotion(req.Info, req.Curriculum, req.Schedule, req.Fee), domain.TextConfig{})
	if !r.Success {
		s.record("promotion", "error", start)
		return r
	}
	s.record("promotion", "success", start)
	return r
}

// GenerateImage always succeeds. When no bitmap can be produced the result
// carries a placeholder URL and the reason it was used.
func (s *generationService) GenerateImage(ctx context.Context, req ImageRequest) domain.Result[domain.InfographicResult] {
	start := time.Now()
	p := prompt.Infographic(req.UnitName, req.Objectives, req.Style, req.Summary, req.Category)
	result := domain.InfographicResult{
		Prompt:   p,
		Style:    req.Style,
		Category: req.Category,
	}

	img, err := s.renderImage(ctx, p)
	if err == nil {
		result.ImageURL = dataURI(img)
		result.IsRealImage = true
		s.record("image", "success", start)
		return domain.Ok(result)
	}

	reason := imagegen.FallbackReason(err)
	fields := []zap.Field{
		zap.String("unit", req.UnitName),
		zap.String("reason", reason),
		zap.Error(err),
	}
	if reason == imagegen.ReasonConfig {
		logger.Get().Error("Image generation is misconfigured, using placeholder", fields...)
	} else {
		logger.Get().Warn("Image generation failed, using placeholder", fields...)
	}
	s.metrics.RecordImageFallback(reason)
	s.record("image", "fallback", start)

	result.ImageURL = placeholder.URL(req.Style, req.UnitName)
	result.FallbackReason = reason
	return domain.Ok(result)
}

func (s *generationService) renderImage(ctx context.Context, p string) (img domain.Image, err error) {
	if s.images == nil {
		return domain.Image{}, domain.ErrImageGenerationDisabled
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("image generator panicked: %v", r)
		}
	}()

	img, err = s.images.GenerateImage(ctx, p)
	if err != nil {
		return domain.Image{}, err
	}
	if len(img.Data) == 0 {
		return domain.Image{}, domain.ErrNoImageData
	}
	return img, nil
}

func dataURI(img domain.Image) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// GenerateInfographics renders one image per curriculum day. Results keep
// the order of curriculum regardless of completion order.
func (s *generationService) GenerateInfographics(ctx context.Context, info domain.CourseInfo, curriculum []domain.DayCurriculum, style domain.Style) []domain.InfographicResult {
	results := make([]domain.InfographicResult, len(curriculum))

	var g errgroup.Group
	g.SetLimit(s.opts.MaxImageWorkers)
	for i, day := range curriculum {
		g.Go(func() error {
			unitName := day.UnitName
			if unitName == "" {
				unitName = fmt.Sprintf("第 %d 天課程", i+1)
			}
			r := s.GenerateImage(ctx, ImageRequest{
				UnitName:   unitName,
				Objectives: day.LearningObjectives,
				Style:      style,
				Summary: &domain.InfographicSummary{
					FullContent: prompt.RenderTeachingContent(day.TeachingContent),
					Objectives:  day.LearningObjectives,
					Homework:    day.Homework,
				},
				Category: info.Category,
			})
			results[i] = r.Data
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *generationService) record(kind, status string, start time.Time) {
	s.metrics.RecordGeneration(kind, status, time.Since(start).Seconds())
}
