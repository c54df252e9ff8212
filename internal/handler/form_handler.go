package handler

import (
	"errors"

	"course-planner/internal/domain"
	"course-planner/internal/dto"
	"course-planner/internal/logger"
	"course-planner/internal/service"
	"course-planner/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormHandler serves the Google Forms export.
type FormHandler struct {
	service   service.FormService
	validator *validation.Validator
}

// NewFormHandler creates a new FormHandler instance
func NewFormHandler(svc service.FormService) *FormHandler {
	return &FormHandler{service: svc, validator: validation.NewValidator()}
}

// AuthURL godoc
// @Summary Google consent URL for the Forms export
// @Description The returned state names the course and expires after 15 minutes
// @Tags forms
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} dto.AuthURLResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /forms/auth-url [get]
func (h *FormHandler) AuthURL(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if errs := h.validator.ValidateCourseID(courseID); len(errs) > 0 {
		return errs
	}

	url, state, err := h.service.AuthURL(courseID)
	if err != nil {
		if errors.Is(err, service.ErrOAuthNotConfigured) {
			return domain.NewFormExportError("Google 授權尚未設定", err)
		}
		logger.Get().Error("Failed to build consent URL", zap.Error(err))
		return domain.NewInternalError("Failed to build consent URL", err)
	}
	return c.JSON(dto.AuthURLResponse{URL: url, State: state})
}

// Export godoc
// @Summary Create a registration form
// @Description Exports the course named by state, or the inline form content
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.FormExportRequest true "Export request"
// @Success 200 {object} domain.Result[domain.FormLink]
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /forms/export [post]
func (h *FormHandler) Export(c *fiber.Ctx) error {
	var req dto.FormExportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateFormExportRequest(req); len(errs) > 0 {
		return errs
	}

	if req.Form != nil {
		return c.JSON(h.service.Export(c.UserContext(), req.AccessToken, *req.Form))
	}
	return c.JSON(h.service.ExportCourse(c.UserContext(), req.AccessToken, req.State))
}
