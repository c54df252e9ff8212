package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Category is the audience segment of a course.
type Category string

const (
	CategoryChildren   Category = "children"
	CategoryVocational Category = "vocational"
)

// IsChildren reports whether the course targets children. Anything that is
// not explicitly "children" is handled as a vocational course.
func (c Category) IsChildren() bool {
	return c == CategoryChildren
}

// Label returns the display name used inside prompts.
func (c Category) Label() string {
	if c.IsChildren() {
		return "兒童課程"
	}
	return "職訓課程"
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryChildren || c == CategoryVocational
}

// CourseInfo is the course metadata every generation call is built from.
type CourseInfo struct {
	ClassName   string   `json:"className"`
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Audience    string   `json:"audience"`
	Category    Category `json:"category"`
	TotalDays   int      `json:"totalDays"`
	HoursPerDay float64  `json:"hoursPerDay"`
}

// TimeSegments are the fixed subdivisions of a 120-minute class session, in order.
var TimeSegments = []string{"0-10", "10-40", "40-45", "45-75", "75-80", "80-110", "110-120"}

// DayCurriculum is the generated plan for one course day.
type DayCurriculum struct {
	UnitName           string            `json:"unitName"`
	LearningObjectives []string          `json:"learningObjectives"`
	TeachingContent    map[string]string `json:"teachingContent"`
	Homework           string            `json:"homework"`
}

// UnmarshalJSON accepts teachingContent either keyed by time segment or, as
// older model answers do, a single block of text which is then filed under
// the first segment.
func (d *DayCurriculum) UnmarshalJSON(b []byte) error {
	var raw struct {
		UnitName           string          `json:"unitName"`
		LearningObjectives []string        `json:"learningObjectives"`
		TeachingContent    json.RawMessage `json:"teachingContent"`
		Homework           string          `json:"homework"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.UnitName = raw.UnitName
	d.LearningObjectives = raw.LearningObjectives
	d.Homework = raw.Homework
	d.TeachingContent = nil

	if len(raw.TeachingContent) == 0 || string(raw.TeachingContent) == "null" {
		return nil
	}
	var segments map[string]string
	if err := json.Unmarshal(raw.TeachingContent, &segments); err == nil {
		d.TeachingContent = segments
		return nil
	}
	var text string
	if err := json.Unmarshal(raw.TeachingContent, &text); err != nil {
		return fmt.Errorf("teachingContent must be an object or a string: %w", err)
	}
	d.TeachingContent = map[string]string{TimeSegments[0]: text}
	return nil
}

// Style is the visual style of a generated infographic.
type Style string

const (
	StyleHandDrawn Style = "hand-drawn"
	StyleTechAI    Style = "tech-ai"
	StyleManga     Style = "manga"
	Style8Bit      Style = "8bit"
)

// Styles lists every supported infographic style.
var Styles = []Style{StyleHandDrawn, StyleTechAI, StyleManga, Style8Bit}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// InfographicSummary is optional structured context for an infographic.
type InfographicSummary struct {
	FullContent string   `json:"fullContent"`
	Objectives  []string `json:"objectives"`
	Homework    string   `json:"homework"`
}

// InfographicResult is the outcome of one image generation. IsRealImage is
// false exactly when ImageURL points at the placeholder service.
type InfographicResult struct {
	ImageURL       string   `json:"imageUrl"`
	Prompt         string   `json:"prompt"`
	IsRealImage    bool     `json:"isRealImage"`
	Style          Style    `json:"style"`
	Category       Category `json:"category"`
	FallbackReason string   `json:"fallbackReason,omitempty"`
}

// Schedule describes when a course takes place. Dates use the YYYY-MM-DD form.
type Schedule struct {
	StartDate      string   `json:"startDate"`
	ScheduledDates []string `json:"scheduledDates"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	HoursPerDay    float64  `json:"hoursPerDay"`
	TotalHours     float64  `json:"totalHours"`
}

// Course is a persisted course document. Data holds the caller's payload as-is.
type Course struct {
	ID        string                 `json:"id"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// MarshalJSON flattens the payload next to the server-assigned fields, which is
// the shape clients read documents in.
func (c Course) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Data)+3)
	for k, v := range c.Data {
		out[k] = v
	}
	out["id"] = c.ID
	out["createdAt"] = c.CreatedAt
	out["updatedAt"] = c.UpdatedAt
	return json.Marshal(out)
}

// Decode re-reads the payload into a typed view such as FormContent.
func (c *Course) Decode(v interface{}) error {
	b, err := json.Marshal(c.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// CourseRepository persists course documents. GetCourse returns (nil, nil)
// when no course has the given id; UpdateCourse and DeleteCourse report a
// missing row as sql.ErrNoRows.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]*Course, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
	GetCourseForUpdate(ctx context.Context, id string) (*Course, error)
	CreateCourse(ctx context.Context, course *Course) error
	UpdateCourse(ctx context.Context, course *Course) error
	DeleteCourse(ctx context.Context, id string) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
