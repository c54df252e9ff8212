package handler

import (
	"errors"
	"time"

	"course-planner/internal/domain"
	"course-planner/internal/dto"
	"course-planner/internal/schedule"
	"course-planner/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler computes class dates.
type ScheduleHandler struct {
	validator *validation.Validator
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{validator: validation.NewValidator()}
}

// BuildSchedule godoc
// @Summary Compute class dates
// @Description Lists the dates needed to cover totalHours on the selected weekdays (0 = Sunday)
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body dto.ScheduleRequest true "Schedule request"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /schedule [post]
func (h *ScheduleHandler) BuildSchedule(c *fiber.Ctx) error {
	var req dto.ScheduleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateScheduleRequest(req); len(errs) > 0 {
		return errs
	}

	weekdays := make([]time.Weekday, 0, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		weekdays = append(weekdays, time.Weekday(wd))
	}
	sched, err := schedule.Build(schedule.Request{
		TotalHours:  req.TotalHours,
		HoursPerDay: req.HoursPerDay,
		StartDate:   req.StartDate,
		Weekdays:    weekdays,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return scheduleError(err)
	}

	return c.JSON(dto.ScheduleResponse{Schedule: sched, TotalDays: len(sched.ScheduledDates)})
}

func scheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		return domain.ValidationErrors{domain.NewInvalidFormatError("startDate", "開課日期格式必須為 YYYY-MM-DD")}
	case errors.Is(err, schedule.ErrInvalidPeriod):
		return domain.ValidationErrors{domain.NewInvalidFormatError("endTime", "結束時間必須晚於開始時間")}
	case errors.Is(err, schedule.ErrNoWeekdays):
		return domain.ValidationErrors{{Field: "weekdays", Code: domain.CodeMissingField, Message: "請至少選擇一個上課日"}}
	default:
		return domain.NewInvalidInputError(err.Error())
	}
}
