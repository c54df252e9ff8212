package dto

import (
	"time"

	"course-planner/internal/domain"
)

// CourseInfo is the course metadata sent with every generation request
// @Description Course metadata
type CourseInfo struct {
	ClassName   string  `json:"className"`
	Topic       string  `json:"topic"`
	Description string  `json:"description"`
	Audience    string  `json:"audience"`
	Category    string  `json:"category" enums:"children,vocational"`
	TotalDays   int     `json:"totalDays"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

func (c CourseInfo) ToDomain() domain.CourseInfo {
	return domain.CourseInfo{
		ClassName:   c.ClassName,
		Topic:       c.Topic,
		Description: c.Description,
		Audience:    c.Audience,
		Category:    domain.Category(c.Category),
		TotalDays:   c.TotalDays,
		HoursPerDay: c.HoursPerDay,
	}
}

// ClassNamesRequest asks for three class-name suggestions
type ClassNamesRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Keywords string `json:"keywords"`
}

// CurriculumRequest asks for the plan of a single day (1-based)
type CurriculumRequest struct {
	Course CourseInfo `json:"course"`
	Day    int        `json:"day"`
}

// CourseRequest asks for the plan of every day of a course
type CourseRequest struct {
	Course CourseInfo `json:"course"`
}

// PromotionRequest asks for marketing copy
type PromotionRequest struct {
	Course     CourseInfo             `json:"course"`
	Curriculum []domain.DayCurriculum `json:"curriculum,omitempty"`
	Schedule   *domain.Schedule       `json:"schedule,omitempty"`
	Fee        string                 `json:"fee,omitempty"`
}

// InfographicRequest asks for one infographic image
type InfographicRequest struct {
	UnitName   string                     `json:"unitName"`
	Objectives []string                   `json:"objectives"`
	Style      string                     `json:"style" enums:"hand-drawn,tech-ai,manga,8bit"`
	Summary    *domain.InfographicSummary `json:"summary,omitempty"`
	Category   string                     `json:"category"`
}

// InfographicsRequest asks for one infographic per curriculum day
type InfographicsRequest struct {
	Course     CourseInfo             `json:"course"`
	Curriculum []domain.DayCurriculum `json:"curriculum"`
	Style      string                 `json:"style"`
}

// ScheduleRequest computes class dates. Weekdays use 0 for Sunday through 6 for Saturday.
type ScheduleRequest struct {
	TotalHours  float64 `json:"totalHours"`
	HoursPerDay float64 `json:"hoursPerDay"`
	StartDate   string  `json:"startDate" example:"2026-01-26"`
	Weekdays    []int   `json:"weekdays"`
	StartTime   string  `json:"startTime,omitempty" example:"09:10"`
	EndTime     string  `json:"endTime,omitempty" example:"10:10"`
}

// ScheduleResponse is a computed schedule plus the day count it implies
type ScheduleResponse struct {
	domain.Schedule
	TotalDays int `json:"totalDays"`
}

// CourseListResponse wraps the stored courses, newest first
type CourseListResponse struct {
	Courses []domain.Course `json:"courses"`
}

// CourseResponse is the shape of a stored course in Swagger docs; the actual
// body carries the document fields next to these.
type CourseResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
