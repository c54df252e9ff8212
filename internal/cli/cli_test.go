package cli

import (
	"bytes"
	"context"
	"testing"

	"course-planner/internal/domain"
	"course-planner/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGeneration answers every call from its func fields; unset fields fail.
type fakeGeneration struct {
	classNames func(topic, audience, keywords string) domain.Result[[]string]
	day        func(info domain.CourseInfo, day int) domain.Result[domain.DayCurriculum]
	course     func(info domain.CourseInfo) domain.Result[[]domain.DayCurriculum]
	promotion  func(req service.PromotionRequest) domain.Result[string]
}

func (f *fakeGeneration) GenerateText(ctx context.Context, prompt string, cfg domain.TextConfig) domain.Result[string] {
	return domain.Fail[string]("not used")
}

func (f *fakeGeneration) GenerateClassNames(ctx context.Context, topic, audience, keywords string) domain.Result[[]string] {
	return f.classNames(topic, audience, keywords)
}

func (f *fakeGeneration) GenerateDayCurriculum(ctx context.Context, info domain.CourseInfo, day int) domain.Result[domain.DayCurriculum] {
	return f.day(info, day)
}

func (f *fakeGeneration) GenerateCourse(ctx context.Context, info domain.CourseInfo) domain.Result[[]domain.DayCurriculum] {
	return f.course(info)
}

func (f *fakeGeneration) GeneratePromotion(ctx context.Context, req service.PromotionRequest) domain.Result[string] {
	return f.promotion(req)
}

func (f *fakeGeneration) GenerateImage(ctx context.Context, req service.ImageRequest) domain.Result[domain.InfographicResult] {
	return domain.Fail[domain.InfographicResult]("not used")
}

func (f *fakeGeneration) GenerateInfographics(ctx context.Context, info domain.CourseInfo, curriculum []domain.DayCurriculum, style domain.Style) []domain.InfographicResult {
	return nil
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestNamesCmd(t *testing.T) {
	var gotKeywords string
	app := &App{Generation: &fakeGeneration{
		classNames: func(topic, audience, keywords string) domain.Result[[]string] {
			gotKeywords = keywords
			return domain.Ok([]string{"AI 小學堂", "AI 探險家", "AI 創作營"})
		},
	}}

	out, err := executeCmd(t, app, "names", "--topic", "AI 繪圖", "--audience", "國小學生", "--keywords", "AI")
	require.NoError(t, err)
	assert.Equal(t, "AI", gotKeywords)
	assert.Equal(t, "1. AI 小學堂\n2. AI 探險家\n3. AI 創作營\n", out)
}

func TestNamesCmd_ValidationError(t *testing.T) {
	app := &App{Generation: &fakeGeneration{}}

	_, err := executeCmd(t, app, "names", "--audience", "國小學生")
	require.Error(t, err)
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	_, ok := verrs.Field("topic")
	assert.True(t, ok)
}

func TestNamesCmd_GenerationFailure(t *testing.T) {
	app := &App{Generation: &fakeGeneration{
		classNames: func(string, string, string) domain.Result[[]string] {
			return domain.Fail[[]string]("API 配額已用盡")
		},
	}}

	_, err := executeCmd(t, app, "names", "--topic", "AI", "--audience", "成人")
	require.Error(t, err)
	assert.Equal(t, "API 配額已用盡", err.Error())
}

func TestCurriculumCmd(t *testing.T) {
	app := &App{Generation: &fakeGeneration{
		day: func(info domain.CourseInfo, day int) domain.Result[domain.DayCurriculum] {
			assert.Equal(t, domain.CategoryChildren, info.Category)
			assert.Equal(t, 3, info.TotalDays)
			return domain.Ok(domain.DayCurriculum{UnitName: "認識 AI", LearningObjectives: []string{"說出 AI 的例子"}})
		},
	}}

	out, err := executeCmd(t, app, "curriculum",
		"--topic", "AI 繪圖", "--audience", "國小學生", "--category", "children", "--days", "3", "--day", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "## 第 2 天：認識 AI")
	assert.Contains(t, out, "- 說出 AI 的例子")
}

func TestCurriculumCmd_InvalidDay(t *testing.T) {
	app := &App{Generation: &fakeGeneration{}}

	_, err := executeCmd(t, app, "curriculum", "--topic", "AI", "--audience", "成人", "--day", "0")
	assert.Error(t, err)
}

func TestCourseCmd(t *testing.T) {
	app := &App{Generation: &fakeGeneration{
		course: func(info domain.CourseInfo) domain.Result[[]domain.DayCurriculum] {
			return domain.Ok([]domain.DayCurriculum{{UnitName: "入門"}, {UnitName: "進階"}})
		},
	}}

	out, err := executeCmd(t, app, "course", "--topic", "AI", "--audience", "成人", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "## 第 1 天：入門")
	assert.Contains(t, out, "## 第 2 天：進階")
}

func TestPromotionCmd_WithCurriculum(t *testing.T) {
	var got service.PromotionRequest
	app := &App{Generation: &fakeGeneration{
		course: func(info domain.CourseInfo) domain.Result[[]domain.DayCurriculum] {
			return domain.Ok([]domain.DayCurriculum{{UnitName: "入門"}})
		},
		promotion: func(req service.PromotionRequest) domain.Result[string] {
			got = req
			return domain.Ok("快來報名！")
		},
	}}

	out, err := executeCmd(t, app, "promotion", "--topic", "AI", "--audience", "成人", "--fee", "3000", "--with-curriculum")
	require.NoError(t, err)
	assert.Equal(t, "快來報名！\n", out)
	assert.Equal(t, "3000", got.Fee)
	require.Len(t, got.Curriculum, 1)
	assert.Equal(t, "入門", got.Curriculum[0].UnitName)
}

func TestScheduleCmd(t *testing.T) {
	// 2026-01-26 is a Monday; Mon/Wed classes of 2h cover 6h in three days.
	out, err := executeCmd(t, &App{}, "schedule",
		"--total-hours", "6", "--hours-per-day", "2", "--start", "2026-01-26", "--weekdays", "1,3")
	require.NoError(t, err)
	assert.Equal(t, "共 3 天\n第 1 天：2026 / 01 / 26\n第 2 天：2026 / 01 / 28\n第 3 天：2026 / 02 / 02\n", out)
}

func TestScheduleCmd_MissingStart(t *testing.T) {
	_, err := executeCmd(t, &App{}, "schedule", "--total-hours", "6")
	assert.Error(t, err)
}
