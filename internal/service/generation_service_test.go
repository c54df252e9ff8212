package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"course-planner/internal/domain"
	"course-planner/internal/metrics"
	"course-planner/internal/placeholder"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageFunc adapts a function to domain.ImageGenerator.
type imageFunc func(ctx context.Context, prompt string) (domain.Image, error)

func (f imageFunc) GenerateImage(ctx context.Context, prompt string) (domain.Image, error) {
	return f(ctx, prompt)
}

func sampleCourse() domain.CourseInfo {
	return domain.CourseInfo{
		ClassName:   "AI 小學堂",
		Topic:       "生成式 AI 入門",
		Audience:    "國小高年級",
		Category:    domain.CategoryChildren,
		TotalDays:   3,
		HoursPerDay: 2,
	}
}

func TestGenerateClassNames_FencedResponse(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.AnythingOfType("string"), domain.TextConfig{}).
		Return(domain.Ok("```json\n{\"suggestions\":[\"A\",\"B\",\"C\"]}\n```")).Once()

	m := metrics.New(prometheus.NewRegistry())
	svc := NewGenerationService(text, nil, m, GenerationOptions{})

	r := svc.GenerateClassNames(context.Background(), "AI", "兒童", "")
	require.True(t, r.Success, r.Error)
	assert.Equal(t, []string{"A", "B", "C"}, r.Data)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationRequestsTotal.WithLabelValues("class_names", "success")))
	text.AssertExpectations(t)
}

func TestGenerateClassNames_RepeatedRequestDraftsNewNames(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Ok(`{"suggestions":["A","B","C"]}`)).Once()
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Ok(`{"suggestions":["X","Y","Z"]}`)).Once()

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	first := svc.GenerateClassNames(context.Background(), "AI", "兒童", "")
	require.True(t, first.Success, first.Error)
	assert.Equal(t, []string{"A", "B", "C"}, first.Data)

	second := svc.GenerateClassNames(context.Background(), "AI", "兒童", "")
	require.True(t, second.Success, second.Error)
	assert.Equal(t, []string{"X", "Y", "Z"}, second.Data)

	text.AssertNumberOfCalls(t, "GenerateText", 2)
}

func TestGenerateClassNames_UnparseableReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"Prose", "here are some names: A, B, C"},
		{"EmptyList", `{"suggestions":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := new(MockTextGenerator)
			text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(domain.Ok(tt.reply))

			svc := NewGenerationService(text, nil, nil, GenerationOptions{})

			r := svc.GenerateClassNames(context.Background(), "AI", "兒童", "Canva")
			assert.False(t, r.Success)
			assert.Equal(t, domain.MsgParseFailure, r.Error)
		})
	}
}

func TestGenerateClassNames_TextFailurePassesThrough(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Fail[string]("quota exceeded"))

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateClassNames(context.Background(), "AI", "兒童", "")
	assert.False(t, r.Success)
	assert.Equal(t, "quota exceeded", r.Error)
}

func TestGenerateClassNames_ConcurrentCallsShareOneRequest(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	text := textFunc(func(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
		atomic.AddInt32(&calls, 1)
		<-release
		return domain.Ok(`{"suggestions":["A","B","C"]}`)
	})
	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	var wg sync.WaitGroup
	results := make([]domain.Result[[]string], 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.GenerateClassNames(context.Background(), "AI", "兒童", "")
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.True(t, r.Success)
		assert.Equal(t, []string{"A", "B", "C"}, r.Data)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(len(results)))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

// textFunc adapts a function to domain.TextGenerator.
type textFunc func(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string]

func (f textFunc) GenerateText(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
	return f(ctx, prompt, cfg)
}

func TestGenerateDayCurriculum(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "第 1 天") && strings.Contains(p, "第1天著重基礎概念與環境設定")
	}), domain.TextConfig{}).Return(domain.Ok("```json\n" + `{
  "unitName": "認識 AI",
  "learningObjectives": ["了解 AI", "操作聊天機器人", "分辨 AI 產物"],
  "teachingContent": {"0-10": "暖身", "10-40": "講解"},
  "homework": "畫出你的 AI 朋友"
}` + "\n```"))

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateDayCurriculum(context.Background(), sampleCourse(), 1)
	require.True(t, r.Success, r.Error)
	assert.Equal(t, "認識 AI", r.Data.UnitName)
	assert.Len(t, r.Data.LearningObjectives, 3)
	assert.Equal(t, "暖身", r.Data.TeachingContent["0-10"])
	assert.Equal(t, "畫出你的 AI 朋友", r.Data.Homework)
	text.AssertExpectations(t)
}

func TestGenerateDayCurriculum_Malformed(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(domain.Ok("{unitName:"))

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateDayCurriculum(context.Background(), sampleCourse(), 2)
	assert.False(t, r.Success)
	assert.Equal(t, domain.MsgParseFailure, r.Error)
}

func TestGenerateDayCurriculum_EmptyReplyIsParseFailure(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"Null", "null"},
		{"EmptyObject", "{}"},
		{"FencedEmptyObject", "```json\n{}\n```"},
		{"OnlyHomework", `{"homework": "複習"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := new(MockTextGenerator)
			text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(domain.Ok(tt.reply))

			m := metrics.New(prometheus.NewRegistry())
			svc := NewGenerationService(text, nil, m, GenerationOptions{})

			r := svc.GenerateDayCurriculum(context.Background(), sampleCourse(), 1)
			assert.False(t, r.Success)
			assert.Equal(t, domain.MsgParseFailure, r.Error)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationRequestsTotal.WithLabelValues("curriculum", "parse_error")))
		})
	}
}

func TestGenerateCourse_EmptyDayStopsCourse(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Ok(`{"unitName":"第一天","teachingContent":{"0-30":"講解"}}`)).Once()
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Ok("{}")).Once()

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateCourse(context.Background(), sampleCourse())
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "第 2 天")
	assert.Contains(t, r.Error, domain.MsgParseFailure)
	text.AssertNumberOfCalls(t, "GenerateText", 2)
}

func TestGenerateCourse_StopsAtFirstFailure(t *testing.T) {
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Ok(`{"unitName":"Day 1","learningObjectives":["a"],"teachingContent":{},"homework":"h"}`)).Once()
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Fail[string]("timeout")).Once()

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateCourse(context.Background(), sampleCourse())
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "第 2 天")
	assert.Contains(t, r.Error, "timeout")
	text.AssertNumberOfCalls(t, "GenerateText", 2)
}

func TestGenerateCourse_AllDaysInOrder(t *testing.T) {
	var day int32
	text := textFunc(func(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
		n := atomic.AddInt32(&day, 1)
		return domain.Ok(`{"unitName":"Unit ` + string(rune('0'+n)) + `","learningObjectives":[],"teachingContent":{},"homework":""}`)
	})
	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GenerateCourse(context.Background(), sampleCourse())
	require.True(t, r.Success)
	require.Len(t, r.Data, 3)
	assert.Equal(t, "Unit 1", r.Data[0].UnitName)
	assert.Equal(t, "Unit 3", r.Data[2].UnitName)
}

func TestGeneratePromotion_ReturnsProseUnparsed(t *testing.T) {
	prose := "```\n孩子總是沉迷手機？\n```"
	text := new(MockTextGenerator)
	text.On("GenerateText", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "2026 / 01 / 26") && strings.Contains(p, "3000")
	}), mock.Anything).Return(domain.Ok(prose))

	svc := NewGenerationService(text, nil, nil, GenerationOptions{})

	r := svc.GeneratePromotion(context.Background(), PromotionRequest{
		Info:     sampleCourse(),
		Schedule: &domain.Schedule{StartDate: "2026-01-26", StartTime: "09:00", EndTime: "11:00"},
		Fee:      "3000",
	})
	require.True(t, r.Success)
	assert.Equal(t, prose, r.Data)
}

func TestGenerateImage_RealImage(t *testing.T) {
	images := new(MockImageGenerator)
	images.On("GenerateImage", mock.Anything, mock.Anything).
		Return(domain.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}, nil)

	svc := NewGenerationService(new(MockTextGenerator), images, nil, GenerationOptions{})

	r := svc.GenerateImage(context.Background(), ImageRequest{
		UnitName: "認識 AI",
		Style:    domain.StyleTechAI,
		Category: domain.CategoryVocational,
	})
	require.True(t, r.Success)
	assert.True(t, r.Data.IsRealImage)
	assert.Equal(t, "data:image/png;base64,iVBORw==", r.Data.ImageURL)
	assert.Empty(t, r.Data.FallbackReason)
	assert.Equal(t, domain.StyleTechAI, r.Data.Style)
	assert.NotEmpty(t, r.Data.Prompt)
}

func TestGenerateImage_FallbackToPlaceholder(t *testing.T) {
	tests := []struct {
		name       string
		images     domain.ImageGenerator
		wantReason string
	}{
		{
			name: "transient failure",
			images: imageFunc(func(ctx context.Context, prompt string) (domain.Image, error) {
				return domain.Image{}, errors.New("connection reset by peer")
			}),
			wantReason: "transient",
		},
		{
			name: "bad api key",
			images: imageFunc(func(ctx context.Context, prompt string) (domain.Image, error) {
				return domain.Image{}, errors.New("Error 403, Message: permission denied")
			}),
			wantReason: "config",
		},
		{
			name: "empty payload",
			images: imageFunc(func(ctx context.Context, prompt string) (domain.Image, error) {
				return domain.Image{MIMEType: "image/png"}, nil
			}),
			wantReason: "no_data",
		},
		{
			name: "panicking provider",
			images: imageFunc(func(ctx context.Context, prompt string) (domain.Image, error) {
				panic("boom")
			}),
			wantReason: "transient",
		},
		{name: "disabled", images: nil, wantReason: "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New(prometheus.NewRegistry())
			svc := NewGenerationService(new(MockTextGenerator), tt.images, m, GenerationOptions{})

			r := svc.GenerateImage(context.Background(), ImageRequest{
				UnitName: "認識 AI",
				Style:    domain.StyleHandDrawn,
				Category: domain.CategoryChildren,
			})
			require.True(t, r.Success)
			assert.False(t, r.Data.IsRealImage)
			assert.True(t, strings.HasPrefix(r.Data.ImageURL, "https://placehold.co/"))
			assert.True(t, placeholder.IsPlaceholder(r.Data.ImageURL))
			assert.Contains(t, r.Data.ImageURL, "FFF4E6/8B4513")
			assert.Equal(t, tt.wantReason, r.Data.FallbackReason)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ImageFallbackTotal.WithLabelValues(tt.wantReason)))
		})
	}
}

func TestGenerateInfographics_KeepsDayOrder(t *testing.T) {
	var inFlight, peak int32
	images := imageFunc(func(ctx context.Context, prompt string) (domain.Image, error) {
		cur := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
				break
			}
		}
		defer atomic.AddInt32(&inFlight, -1)

		switch {
		case strings.Contains(prompt, "「Day A」"):
			time.Sleep(30 * time.Millisecond)
			return domain.Image{Data: []byte("A"), MIMEType: "image/png"}, nil
		case strings.Contains(prompt, "「Day B」"):
			return domain.Image{}, errors.New("503 unavailable")
		default:
			return domain.Image{Data: []byte("C"), MIMEType: "image/jpeg"}, nil
		}
	})
	svc := NewGenerationService(new(MockTextGenerator), images, nil, GenerationOptions{MaxImageWorkers: 2})

	curriculum := []domain.DayCurriculum{
		{UnitName: "Day A", LearningObjectives: []string{"a"}},
		{UnitName: "Day B", LearningObjectives: []string{"b"}},
		{UnitName: "Day C", LearningObjectives: []string{"c"}},
	}
	results := svc.GenerateInfographics(context.Background(), sampleCourse(), curriculum, domain.StyleManga)

	require.Len(t, results, 3)
	assert.Equal(t, "data:image/png;base64,QQ==", results[0].ImageURL)
	assert.False(t, results[1].IsRealImage)
	assert.Contains(t, results[1].ImageURL, "text=Day+B")
	assert.Equal(t, "data:image/jpeg;base64,Qw==", results[2].ImageURL)
	for _, r := range results {
		assert.Equal(t, domain.StyleManga, r.Style)
		assert.Equal(t, domain.CategoryChildren, r.Category)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}
