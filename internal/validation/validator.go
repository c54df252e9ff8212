package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"course-planner/internal/domain"
	"course-planner/internal/dto"
)

const (
	maxTopicRunes       = 100
	maxAudienceRunes    = 100
	maxKeywordsRunes    = 50
	maxDescriptionRunes = 2000
	maxTotalDays        = 30
	maxHoursPerDay      = 12
	maxTotalHours       = 300
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateClassNamesRequest validates a class-name suggestion request
func (v *Validator) ValidateClassNamesRequest(req dto.ClassNamesRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = appendIf(errors, required(req.Topic, "topic", "課程主題"))
	errors = appendIf(errors, maxLength(req.Topic, maxTopicRunes, "topic", "課程主題"))
	errors = appendIf(errors, required(req.Audience, "audience", "目標客群"))
	errors = appendIf(errors, maxLength(req.Audience, maxAudienceRunes, "audience", "目標客群"))
	errors = appendIf(errors, maxLength(req.Keywords, maxKeywordsRunes, "keywords", "關鍵字"))
	return errors
}

// ValidateCourseInfo validates the course metadata used by generation.
// Day counts and hours are optional but must be in range when present.
func (v *Validator) ValidateCourseInfo(info dto.CourseInfo) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = appendIf(errors, required(info.Topic, "course.topic", "課程主題"))
	errors = appendIf(errors, maxLength(info.Topic, maxTopicRunes, "course.topic", "課程主題"))
	errors = appendIf(errors, required(info.Audience, "course.audience", "目標客群"))
	errors = appendIf(errors, maxLength(info.Description, maxDescriptionRunes, "course.description", "課程描述"))
	if info.Category != "" && !domain.Category(info.Category).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("course.category", "課程分類必須為 children 或 vocational"))
	}
	if info.TotalDays < 0 || info.TotalDays > maxTotalDays {
		errors = append(errors, outOfRange("course.totalDays", "總天數", 1, maxTotalDays))
	}
	if info.HoursPerDay < 0 || info.HoursPerDay > maxHoursPerDay {
		errors = append(errors, outOfRange("course.hoursPerDay", "每日時數", 1, maxHoursPerDay))
	}
	return errors
}

// ValidateCurriculumRequest validates a single-day curriculum request
func (v *Validator) ValidateCurriculumRequest(req dto.CurriculumRequest) domain.ValidationErrors {
	errors := v.ValidateCourseInfo(req.Course)
	if req.Day <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("day", "天數必須為正整數"))
	} else if req.Course.TotalDays > 0 && req.Day > req.Course.TotalDays {
		errors = append(errors, outOfRange("day", "天數", 1, req.Course.TotalDays))
	}
	return errors
}

// ValidateCourseRequest validates a whole-course generation request
func (v *Validator) ValidateCourseRequest(req dto.CourseRequest) domain.ValidationErrors {
	errors := v.ValidateCourseInfo(req.Course)
	if req.Course.TotalDays <= 0 {
		if _, found := errors.Field("course.totalDays"); !found {
			errors = append(errors, domain.NewOutOfRangeError("course.totalDays", "總天數必須為正整數"))
		}
	}
	return errors
}

// ValidatePromotionRequest validates a promotion request
func (v *Validator) ValidatePromotionRequest(req dto.PromotionRequest) domain.ValidationErrors {
	return v.ValidateCourseInfo(req.Course)
}

// ValidateInfographicRequest validates a single infographic request
func (v *Validator) ValidateInfographicRequest(req dto.InfographicRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = appendIf(errors, required(req.UnitName, "unitName", "單元名稱"))
	errors = appendIf(errors, validStyle(req.Style, "style"))
	return errors
}

// ValidateInfographicsRequest validates a per-day infographic batch
func (v *Validator) ValidateInfographicsRequest(req dto.InfographicsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(req.Curriculum) == 0 {
		errors = append(errors, domain.NewMissingFieldError("curriculum", "課綱"))
	} else if len(req.Curriculum) > maxTotalDays {
		errors = append(errors, outOfRange("curriculum", "課綱天數", 1, maxTotalDays))
	}
	errors = appendIf(errors, validStyle(req.Style, "style"))
	return errors
}

// ValidateScheduleRequest validates a schedule computation request
func (v *Validator) ValidateScheduleRequest(req dto.ScheduleRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.TotalHours <= 0 || req.TotalHours > maxTotalHours {
		errors = append(errors, outOfRange("totalHours", "總時數", 1, maxTotalHours))
	}
	if req.HoursPerDay <= 0 || req.HoursPerDay > maxHoursPerDay {
		errors = append(errors, outOfRange("hoursPerDay", "每日時數", 1, maxHoursPerDay))
	}
	errors = appendIf(errors, required(req.StartDate, "startDate", "開課日期"))
	if len(req.Weekdays) == 0 {
		errors = append(errors, domain.ValidationError{Field: "weekdays", Code: domain.CodeMissingField, Message: "請至少選擇一個上課日"})
	}
	for _, wd := range req.Weekdays {
		if wd < 0 || wd > 6 {
			errors = append(errors, outOfRange("weekdays", "上課日", 0, 6))
			break
		}
	}
	return errors
}

// ValidateFormExportRequest validates a Forms export request
func (v *Validator) ValidateFormExportRequest(req dto.FormExportRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = appendIf(errors, required(req.AccessToken, "accessToken", "授權碼"))
	if strings.TrimSpace(req.State) == "" && req.Form == nil {
		errors = append(errors, domain.NewMissingFieldError("state", "state 或 form"))
	}
	if req.Form != nil {
		errors = appendIf(errors, required(req.Form.ClassName, "form.className", "班級名稱"))
	}
	return errors
}

// ValidateCourseID validates a stored course id
func (v *Validator) ValidateCourseID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id", "課程編號"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", "課程編號格式錯誤"))
	}
	return errors
}

// Helper functions for validation

func appendIf(errors domain.ValidationErrors, err *domain.ValidationError) domain.ValidationErrors {
	if err != nil {
		errors = append(errors, *err)
	}
	return errors
}

func required(value, field, label string) *domain.ValidationError {
	if strings.TrimSpace(value) == "" {
		e := domain.NewMissingFieldError(field, label)
		return &e
	}
	return nil
}

func maxLength(value string, limit int, field, label string) *domain.ValidationError {
	if utf8.RuneCountInString(value) > limit {
		e := domain.NewOutOfRangeError(field, fmt.Sprintf("%s不能超過 %d 個字", label, limit))
		return &e
	}
	return nil
}

func outOfRange(field, label string, lo, hi int) domain.ValidationError {
	return domain.NewOutOfRangeError(field, fmt.Sprintf("%s必須在 %d 到 %d 之間", label, lo, hi))
}

func validStyle(style, field string) *domain.ValidationError {
	if style == "" || domain.Style(style).Valid() {
		return nil
	}
	e := domain.NewInvalidFormatError(field, "不支援的圖片風格")
	return &e
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}
